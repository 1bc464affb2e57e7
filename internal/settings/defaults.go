package settings

import (
	"encoding/json"
	"errors"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"gorm.io/gorm"
)

const (
	KeyTax        = "tax"
	KeyReceipt    = "receipt"
	KeyBusiness   = "business"
	KeyLanguage   = "language"
	KeyLockScreen = "lockscreen"
)

var ErrUnknownKey = errors.New("unknown setting key")

// Tax timing modes, see checkout for how each one is applied.
const (
	TaxModeBeforeDiscount = "before_discount"
	TaxModeAfterDiscount  = "after_discount"
	TaxModeIncluded       = "included"
)

type TaxSetting struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"` // percent, e.g. 10 means 10%
	Mode    string  `json:"mode"` // before_discount / after_discount / included
}

type ReceiptSetting struct {
	Header     string `json:"header"`
	Footer     string `json:"footer"`
	ShowLogo   bool   `json:"show_logo"`
	ShowTaxRow bool   `json:"show_tax_row"`
	PaperWidth int    `json:"paper_width"` // mm
}

type BusinessSetting struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type LanguageSetting struct {
	Code string `json:"code"` // "id" / "en"
}

type LockScreenSetting struct {
	Enabled        bool `json:"enabled"`
	TimeoutMinutes int  `json:"timeout_minutes"`
}

// DefaultValue: the hard-coded default blob for a key. A changed shape
// simply gets whatever these constructors specify; there is no migration.
func DefaultValue(key string) (any, error) {
	switch key {
	case KeyTax:
		return TaxSetting{Enabled: false, Rate: 10, Mode: TaxModeAfterDiscount}, nil
	case KeyReceipt:
		return ReceiptSetting{Header: "", Footer: "Terima kasih!", ShowLogo: false, ShowTaxRow: true, PaperWidth: 58}, nil
	case KeyBusiness:
		return BusinessSetting{}, nil
	case KeyLanguage:
		return LanguageSetting{Code: "id"}, nil
	case KeyLockScreen:
		return LockScreenSetting{Enabled: false, TimeoutMinutes: 5}, nil
	default:
		return nil, ErrUnknownKey
	}
}

func IsKnownKey(key string) bool {
	_, err := DefaultValue(key)
	return err == nil
}

// GetValue loads the persisted blob for a key, falling back to the default.
func GetValue(key string, out any) error {
	def, err := DefaultValue(key)
	if err != nil {
		return err
	}

	var row models.Setting
	err = database.DB.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		b, _ := json.Marshal(def)
		return json.Unmarshal(b, out)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(row.Value), out)
}

// GetTaxSetting: shortcut used by the checkout engine.
func GetTaxSetting() (TaxSetting, error) {
	var s TaxSetting
	if err := GetValue(KeyTax, &s); err != nil {
		return TaxSetting{}, err
	}
	if s.Mode == "" {
		s.Mode = TaxModeAfterDiscount
	}
	return s, nil
}
