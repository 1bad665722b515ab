package returns

const (
	DefaultReturnPeriodDays = 14
	DefaultMaxImageSize     = 5 << 20
)

// Options are the recognized engine settings. They are passed in once at
// construction and never looked up elsewhere.
type Options struct {
	ReturnPeriodDays       int
	SendNotifications      bool
	RequirePhotos          bool
	ReturnReasons          []string
	CompletedOrderStatuses []float64
	MaxImageSize           int64
	AllowedImageTypes      []string
}

func DefaultOptions() Options {
	return Options{
		ReturnPeriodDays:       DefaultReturnPeriodDays,
		SendNotifications:      true,
		RequirePhotos:          false,
		ReturnReasons:          []string{"Wrong size", "Damaged item", "Not as described", "Changed my mind", "Other"},
		CompletedOrderStatuses: []float64{7, 7.4, 8, 9},
		MaxImageSize:           DefaultMaxImageSize,
		AllowedImageTypes:      []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ReturnPeriodDays <= 0 {
		o.ReturnPeriodDays = d.ReturnPeriodDays
	}
	if len(o.CompletedOrderStatuses) == 0 {
		o.CompletedOrderStatuses = d.CompletedOrderStatuses
	}
	if o.MaxImageSize <= 0 {
		o.MaxImageSize = d.MaxImageSize
	}
	if len(o.AllowedImageTypes) == 0 {
		o.AllowedImageTypes = d.AllowedImageTypes
	}
	return o
}
