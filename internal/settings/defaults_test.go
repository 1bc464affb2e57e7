package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValuePerKey(t *testing.T) {
	v, err := DefaultValue(KeyTax)
	require.NoError(t, err)
	tax := v.(TaxSetting)
	assert.False(t, tax.Enabled)
	assert.Equal(t, 10.0, tax.Rate)
	assert.Equal(t, TaxModeAfterDiscount, tax.Mode)

	v, err = DefaultValue(KeyReceipt)
	require.NoError(t, err)
	receipt := v.(ReceiptSetting)
	assert.Equal(t, 58, receipt.PaperWidth)
	assert.True(t, receipt.ShowTaxRow)

	v, err = DefaultValue(KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "id", v.(LanguageSetting).Code)

	v, err = DefaultValue(KeyLockScreen)
	require.NoError(t, err)
	assert.Equal(t, 5, v.(LockScreenSetting).TimeoutMinutes)
}

func TestDefaultValueUnknownKey(t *testing.T) {
	_, err := DefaultValue("theme")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestIsKnownKey(t *testing.T) {
	for _, key := range []string{KeyTax, KeyReceipt, KeyBusiness, KeyLanguage, KeyLockScreen} {
		assert.True(t, IsKnownKey(key), key)
	}
	assert.False(t, IsKnownKey("theme"))
}

func TestDecodeValueTax(t *testing.T) {
	v, err := decodeValue(KeyTax, []byte(`{"enabled":true,"rate":11,"mode":"included"}`))
	require.NoError(t, err)

	tax := v.(TaxSetting)
	assert.True(t, tax.Enabled)
	assert.Equal(t, 11.0, tax.Rate)
	assert.Equal(t, TaxModeIncluded, tax.Mode)
}

func TestDecodeValueTaxRejectsBadRate(t *testing.T) {
	_, err := decodeValue(KeyTax, []byte(`{"enabled":true,"rate":120,"mode":"included"}`))
	assert.Error(t, err)

	_, err = decodeValue(KeyTax, []byte(`{"enabled":true,"rate":-1,"mode":"included"}`))
	assert.Error(t, err)
}

func TestDecodeValueTaxRejectsBadMode(t *testing.T) {
	_, err := decodeValue(KeyTax, []byte(`{"enabled":true,"rate":10,"mode":"sometimes"}`))
	assert.Error(t, err)
}

func TestDecodeValueLanguageRequiresCode(t *testing.T) {
	_, err := decodeValue(KeyLanguage, []byte(`{"code":""}`))
	assert.Error(t, err)
}

func TestDecodeValueUnknownKey(t *testing.T) {
	_, err := decodeValue("theme", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownKey)
}
