package microcms

import (
	"net/url"
	"strconv"
	"strings"
)

// RichEditorFormat selects how rich editor fields are rendered.
type RichEditorFormat string

// Rich editor formats accepted by the content API.
const (
	RichEditorFormatHTML   RichEditorFormat = "html"
	RichEditorFormatObject RichEditorFormat = "object"
)

// Query parameter names understood by the content API.
const (
	ParamDraftKey         = "draftKey"
	ParamLimit            = "limit"
	ParamOffset           = "offset"
	ParamOrders           = "orders"
	ParamQ                = "q"
	ParamIDs              = "ids"
	ParamFilters          = "filters"
	ParamFields           = "fields"
	ParamDepth            = "depth"
	ParamRichEditorFormat = "richEditorFormat"
)

// GetParams are the options for fetching a single content.
//
// Every field is optional. Unset fields are left out of the request so the
// service applies its own defaults. Depth is a pointer so that an explicit 0
// can be told apart from "not set"; use Int to build one.
type GetParams struct {
	// ContentID addresses one item of a list endpoint. It becomes a path
	// segment, not a query parameter.
	ContentID        string
	DraftKey         string
	Fields           []string
	Depth            *int
	RichEditorFormat RichEditorFormat
}

// ListParams are the options for fetching a list endpoint.
type ListParams struct {
	DraftKey string
	Limit    *int
	Offset   *int
	// Orders are sort expressions such as "-publishedAt".
	Orders []string
	// Q is a full text search query.
	Q      string
	Fields []string
	IDs    []string
	// Filters is a filter expression, see FilterBuilder.
	Filters          string
	Depth            *int
	RichEditorFormat RichEditorFormat
}

// Int returns a pointer to n, for the optional integer parameters.
func Int(n int) *int {
	return &n
}

// NewGetParams creates empty get parameters.
func NewGetParams() *GetParams {
	return &GetParams{}
}

// WithContentID sets the content ID.
func (p *GetParams) WithContentID(id string) *GetParams {
	p.ContentID = id

	return p
}

// WithDraftKey sets the draft key.
func (p *GetParams) WithDraftKey(key string) *GetParams {
	p.DraftKey = key

	return p
}

// WithFields sets the fields to return.
func (p *GetParams) WithFields(fields ...string) *GetParams {
	p.Fields = fields

	return p
}

// WithDepth sets the reference expansion depth.
func (p *GetParams) WithDepth(depth int) *GetParams {
	p.Depth = Int(depth)

	return p
}

// WithRichEditorFormat sets the rich editor format.
func (p *GetParams) WithRichEditorFormat(format RichEditorFormat) *GetParams {
	p.RichEditorFormat = format

	return p
}

// ToValues serializes the set parameters. It returns nil when nothing is set,
// so that the request carries no query string at all. ContentID is not part
// of the query.
func (p *GetParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := url.Values{}
	setString(values, ParamDraftKey, p.DraftKey)
	setList(values, ParamFields, p.Fields)
	setInt(values, ParamDepth, p.Depth)
	setString(values, ParamRichEditorFormat, string(p.RichEditorFormat))

	return nilIfEmpty(values)
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithDraftKey sets the draft key.
func (p *ListParams) WithDraftKey(key string) *ListParams {
	p.DraftKey = key

	return p
}

// WithLimit sets the maximum number of contents returned.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = Int(limit)

	return p
}

// WithOffset sets the number of contents skipped.
func (p *ListParams) WithOffset(offset int) *ListParams {
	p.Offset = Int(offset)

	return p
}

// WithOrders sets the sort expressions.
func (p *ListParams) WithOrders(orders ...string) *ListParams {
	p.Orders = orders

	return p
}

// WithQ sets the full text search query.
func (p *ListParams) WithQ(q string) *ListParams {
	p.Q = q

	return p
}

// WithFields sets the fields to return.
func (p *ListParams) WithFields(fields ...string) *ListParams {
	p.Fields = fields

	return p
}

// WithIDs restricts the result to the given content IDs.
func (p *ListParams) WithIDs(ids ...string) *ListParams {
	p.IDs = ids

	return p
}

// WithFilters sets the filter expression.
func (p *ListParams) WithFilters(filters string) *ListParams {
	p.Filters = filters

	return p
}

// WithDepth sets the reference expansion depth.
func (p *ListParams) WithDepth(depth int) *ListParams {
	p.Depth = Int(depth)

	return p
}

// WithRichEditorFormat sets the rich editor format.
func (p *ListParams) WithRichEditorFormat(format RichEditorFormat) *ListParams {
	p.RichEditorFormat = format

	return p
}

// ToValues serializes the set parameters, or returns nil when nothing is set.
func (p *ListParams) ToValues() url.Values {
	if p == nil {
		return nil
	}

	values := url.Values{}
	setString(values, ParamDraftKey, p.DraftKey)
	setInt(values, ParamLimit, p.Limit)
	setInt(values, ParamOffset, p.Offset)
	setList(values, ParamOrders, p.Orders)
	setString(values, ParamQ, p.Q)
	setList(values, ParamIDs, p.IDs)
	setString(values, ParamFilters, p.Filters)
	setList(values, ParamFields, p.Fields)
	setInt(values, ParamDepth, p.Depth)
	setString(values, ParamRichEditorFormat, string(p.RichEditorFormat))

	return nilIfEmpty(values)
}

func setString(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func setInt(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}

// setList joins multi-value filters with commas, the form the API expects.
func setList(values url.Values, key string, list []string) {
	items := make([]string, 0, len(list))

	for _, item := range list {
		if item != "" {
			items = append(items, item)
		}
	}

	if len(items) > 0 {
		values.Set(key, strings.Join(items, ","))
	}
}

func nilIfEmpty(values url.Values) url.Values {
	if len(values) == 0 {
		return nil
	}

	return values
}
