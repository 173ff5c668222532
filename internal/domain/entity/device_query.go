package entity

import (
	"math"
	"strings"
)

// DevicePageSize is the fixed number of devices per listing page.
const DevicePageSize = 10

// maxDevicePage is the largest page whose offset fits in an int.
const maxDevicePage = math.MaxInt/DevicePageSize + 1

// Sortable device columns. Any other sort field is ignored.
const (
	DeviceSortName         = "name"
	DeviceSortLocation     = "location"
	DeviceSortPurchaseDate = "purchase_date"
	DeviceSortInUse        = "in_use"
	DeviceSortCreatedAt    = "created_at"
)

var deviceSortFields = map[string]struct{}{
	DeviceSortName:         {},
	DeviceSortLocation:     {},
	DeviceSortPurchaseDate: {},
	DeviceSortInUse:        {},
	DeviceSortCreatedAt:    {},
}

// SortDirection of a device listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection maps "asc" (any case) to ascending and everything else to descending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortAsc)) {
		return SortAsc
	}

	return SortDesc
}

// DeviceFilter narrows a listing. Nil fields do not filter.
type DeviceFilter struct {
	InUse             *bool
	Location          *string // Substring match.
	PurchaseDateStart *Date   // Inclusive lower bound.
	PurchaseDateEnd   *Date   // Inclusive upper bound.
}

// DeviceSort orders a listing. An empty Field means no explicit ordering.
type DeviceSort struct {
	Field     string
	Direction SortDirection
}

// NewDeviceSort builds a sort from raw request values. A field outside the
// allow-list yields an empty sort instead of an error.
func NewDeviceSort(field, direction string) DeviceSort {
	if field == "" {
		field = DeviceSortCreatedAt
	}
	if _, ok := deviceSortFields[field]; !ok {
		return DeviceSort{}
	}

	return DeviceSort{Field: field, Direction: ParseSortDirection(direction)}
}

// DeviceQuery is a full listing request.
type DeviceQuery struct {
	Filter DeviceFilter
	Sort   DeviceSort
	Page   int // 1-indexed.
}

// Offset returns the number of rows skipped for the query's page. Pages too
// large to address saturate instead of wrapping negative.
func (q DeviceQuery) Offset() int {
	page := q.NormalizedPage()
	if page > maxDevicePage {
		page = maxDevicePage
	}

	return (page - 1) * DevicePageSize
}

// PastEnd reports whether the page starts after the last of total rows.
func (q DeviceQuery) PastEnd(total int64) bool {
	lastPage := (total + DevicePageSize - 1) / DevicePageSize

	return int64(q.NormalizedPage()) > lastPage
}

// NormalizedPage clamps the page to at least 1.
func (q DeviceQuery) NormalizedPage() int {
	if q.Page < 1 {
		return 1
	}

	return q.Page
}

// PageMeta describes the position of a page in the filtered result set.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// NewPageMeta computes the page metadata. LastPage is 0 for an empty result.
func NewPageMeta(page int, total int64) PageMeta {
	lastPage := int((total + DevicePageSize - 1) / DevicePageSize)

	return PageMeta{
		CurrentPage: page,
		PerPage:     DevicePageSize,
		Total:       total,
		LastPage:    lastPage,
	}
}

// DevicePage is one page of a device listing.
type DevicePage struct {
	Items []*Device
	Meta  PageMeta
}
