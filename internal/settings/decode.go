package settings

import (
	"encoding/json"
	"errors"
)

// decodeValue parses a raw blob into the concrete variant for its key,
// so an "any"-shaped payload never reaches the database.
func decodeValue(key string, data []byte) (any, error) {
	switch key {
	case KeyTax:
		var v TaxSetting
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.New("value does not match the tax setting shape")
		}
		if v.Rate < 0 || v.Rate > 100 {
			return nil, errors.New("tax rate must be between 0 and 100")
		}
		switch v.Mode {
		case TaxModeBeforeDiscount, TaxModeAfterDiscount, TaxModeIncluded:
		default:
			return nil, errors.New("tax mode must be before_discount, after_discount or included")
		}
		return v, nil
	case KeyReceipt:
		var v ReceiptSetting
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.New("value does not match the receipt setting shape")
		}
		return v, nil
	case KeyBusiness:
		var v BusinessSetting
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.New("value does not match the business setting shape")
		}
		return v, nil
	case KeyLanguage:
		var v LanguageSetting
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.New("value does not match the language setting shape")
		}
		if v.Code == "" {
			return nil, errors.New("language code is required")
		}
		return v, nil
	case KeyLockScreen:
		var v LockScreenSetting
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.New("value does not match the lock screen setting shape")
		}
		return v, nil
	default:
		return nil, ErrUnknownKey
	}
}
