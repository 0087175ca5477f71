package adcp

import (
	v "github.com/cohesivestack/valgo"
)

// Task types covered by the SDK's request surface.
const (
	TaskTypeGetProducts         = "get_products"
	TaskTypeCreateMediaBuy      = "create_media_buy"
	TaskTypeListCreatives       = "list_creatives"
	TaskTypeListCreativeFormats = "list_creative_formats"
	TaskTypeGetMediaBuyDelivery = "get_media_buy_delivery"
	TaskTypeSyncCreatives       = "sync_creatives"
)

/*
ResponseError is the error entry an agent may embed in a result payload's
errors list. Only Message is guaranteed to be present.
*/
type ResponseError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ===== get_products ==============================================================================

type Product struct {
	ProductID    string   `json:"product_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Formats      []string `json:"formats,omitempty"`
	DeliveryType string   `json:"delivery_type,omitempty"`
	IsFixedPrice bool     `json:"is_fixed_price,omitempty"`
	CPM          float64  `json:"cpm,omitempty"`
}

type GetProductsResponse struct {
	Products []Product       `json:"products"`
	Message  string          `json:"message,omitempty"`
	Errors   []ResponseError `json:"errors,omitempty"`
}

func (r *GetProductsResponse) Validate() error {
	val := v.Is()
	for _, product := range r.Products {
		val.Is(
			v.String(product.ProductID, "product_id").Not().Blank(),
			v.String(product.Name, "name").Not().Blank(),
			v.String(product.Description, "description").Not().Blank(),
		)
	}
	if !val.Valid() {
		return val.Error()
	}
	return nil
}

// ===== create_media_buy ==========================================================================

type Package struct {
	PackageID string `json:"package_id"`
	BuyerRef  string `json:"buyer_ref,omitempty"`
	Status    string `json:"status,omitempty"`
}

type CreateMediaBuyResponse struct {
	MediaBuyID       string          `json:"media_buy_id"`
	BuyerRef         string          `json:"buyer_ref,omitempty"`
	Packages         []Package       `json:"packages,omitempty"`
	CreativeDeadline string          `json:"creative_deadline,omitempty"`
	Errors           []ResponseError `json:"errors,omitempty"`
}

func (r *CreateMediaBuyResponse) Validate() error {
	// A media buy id is only guaranteed once the buy exists; a rejected buy
	// reports errors instead.
	if r.MediaBuyID == "" && len(r.Errors) == 0 {
		val := v.Is(v.String(r.MediaBuyID, "media_buy_id").Not().Blank())
		return val.Error()
	}
	return nil
}

// ===== list_creatives / sync_creatives ===========================================================

type Creative struct {
	CreativeID string `json:"creative_id"`
	Name       string `json:"name,omitempty"`
	FormatID   string `json:"format_id,omitempty"`
	Status     string `json:"status,omitempty"`
}

type ListCreativesResponse struct {
	Creatives []Creative      `json:"creatives"`
	Errors    []ResponseError `json:"errors,omitempty"`
}

func (r *ListCreativesResponse) Validate() error {
	val := v.Is()
	for _, creative := range r.Creatives {
		val.Is(v.String(creative.CreativeID, "creative_id").Not().Blank())
	}
	if !val.Valid() {
		return val.Error()
	}
	return nil
}

type SyncSummary struct {
	TotalProcessed int `json:"total_processed"`
	Created        int `json:"created,omitempty"`
	Updated        int `json:"updated,omitempty"`
	Failed         int `json:"failed,omitempty"`
}

type SyncResult struct {
	CreativeID string `json:"creative_id"`
	Action     string `json:"action,omitempty"`
}

type SyncCreativesResponse struct {
	Summary *SyncSummary    `json:"summary,omitempty"`
	Results []SyncResult    `json:"results,omitempty"`
	Errors  []ResponseError `json:"errors,omitempty"`
}

func (r *SyncCreativesResponse) Validate() error {
	val := v.Is()
	for _, result := range r.Results {
		val.Is(v.String(result.CreativeID, "creative_id").Not().Blank())
	}
	if !val.Valid() {
		return val.Error()
	}
	return nil
}

// ===== list_creative_formats =====================================================================

type Format struct {
	FormatID string `json:"format_id"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
}

type ListCreativeFormatsResponse struct {
	Formats []Format        `json:"formats"`
	Errors  []ResponseError `json:"errors,omitempty"`
}

func (r *ListCreativeFormatsResponse) Validate() error {
	val := v.Is()
	for _, format := range r.Formats {
		val.Is(
			v.String(format.FormatID, "format_id").Not().Blank(),
			v.String(format.Name, "name").Not().Blank(),
		)
	}
	if !val.Valid() {
		return val.Error()
	}
	return nil
}

// ===== get_media_buy_delivery ====================================================================

type DeliveryTotals struct {
	Impressions float64 `json:"impressions,omitempty"`
	Spend       float64 `json:"spend,omitempty"`
}

type MediaBuyDelivery struct {
	MediaBuyID string          `json:"media_buy_id"`
	Status     string          `json:"status,omitempty"`
	Totals     *DeliveryTotals `json:"totals,omitempty"`
}

type GetMediaBuyDeliveryResponse struct {
	Deliveries []MediaBuyDelivery `json:"deliveries"`
	Errors     []ResponseError    `json:"errors,omitempty"`
}

func (r *GetMediaBuyDeliveryResponse) Validate() error {
	val := v.Is()
	for _, delivery := range r.Deliveries {
		val.Is(v.String(delivery.MediaBuyID, "media_buy_id").Not().Blank())
	}
	if !val.Valid() {
		return val.Error()
	}
	return nil
}
