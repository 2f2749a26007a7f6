package response

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, fmt.Errorf("expected uuid.UUID, got %T", src)
				}
				return id.String(), nil
			},
		},
	},
}

// copyFrom panics when the view and response shapes drift apart.
func copyFrom(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(fmt.Sprintf("copy %T into %T: %v", src, dst, err))
	}
}
