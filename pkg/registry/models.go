package registry

import (
	"bytes"
	"encoding/json"

	"github.com/adcontextprotocol/adcp-go/pkg/adcp"
)

// validator is implemented by response models that carry field constraints
// beyond what strict unmarshalling enforces.
type validator interface {
	Validate() error
}

// strictDecode unmarshals raw into T, rejecting unknown fields and running
// the model's own validation. Any mismatch surfaces as a
// *adcp.SchemaValidationError so callers can fall back to the raw payload.
func strictDecode[T any](taskType string, raw json.RawMessage) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	out := new(T)
	if err := decoder.Decode(out); err != nil {
		return nil, &adcp.SchemaValidationError{TaskType: taskType, Err: err}
	}

	if model, ok := any(out).(validator); ok {
		if err := model.Validate(); err != nil {
			return nil, &adcp.SchemaValidationError{TaskType: taskType, Err: err}
		}
	}

	return out, nil
}

func responseModel[T any](taskType string) DecodeFunc {
	return func(raw json.RawMessage) (any, error) {
		return strictDecode[T](taskType, raw)
	}
}

func init() {
	RegisterResponse(adcp.TaskTypeGetProducts, responseModel[adcp.GetProductsResponse](adcp.TaskTypeGetProducts))
	RegisterResponse(adcp.TaskTypeCreateMediaBuy, responseModel[adcp.CreateMediaBuyResponse](adcp.TaskTypeCreateMediaBuy))
	RegisterResponse(adcp.TaskTypeListCreatives, responseModel[adcp.ListCreativesResponse](adcp.TaskTypeListCreatives))
	RegisterResponse(adcp.TaskTypeListCreativeFormats, responseModel[adcp.ListCreativeFormatsResponse](adcp.TaskTypeListCreativeFormats))
	RegisterResponse(adcp.TaskTypeGetMediaBuyDelivery, responseModel[adcp.GetMediaBuyDeliveryResponse](adcp.TaskTypeGetMediaBuyDelivery))
	RegisterResponse(adcp.TaskTypeSyncCreatives, responseModel[adcp.SyncCreativesResponse](adcp.TaskTypeSyncCreatives))
}
