package i18n

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"vi-VN", LocaleVI},
		{"vi", LocaleVI},
		{"VI-vn", LocaleVI},
		{"en-US", LocaleEN},
		{"en-GB", LocaleEN},
		{"zh-CN", LocaleZH},
		{"zh-TW,zh;q=0.9,en;q=0.8", LocaleZH},
		{"vi-VN,vi;q=0.9", LocaleVI},
		{"", DefaultLocale()},
		{"fr-FR", DefaultLocale()},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Fatalf("Normalize(%q) want %s got %s", tc.input, tc.want, got)
		}
	}
}

func TestTranslateWithFallback(t *testing.T) {
	if got := T("vi-VN", MsgInsufficientStock); got != "Sản phẩm không đủ số lượng trong kho" {
		t.Fatalf("unexpected vi message: %s", got)
	}
	if got := T("en-US", MsgSuccess); got == MsgSuccess || got == "" {
		t.Fatalf("expected translated en message, got %q", got)
	}
	// 未知语言回退默认语言
	if got := T("fr-FR", MsgSuccess); got != T(DefaultLocale(), MsgSuccess) {
		t.Fatalf("expected default locale fallback, got %q", got)
	}
	// 未知 key 回退 key 本身
	if got := T("vi-VN", "nonexistent.key"); got != "nonexistent.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestSetDefaultLocale(t *testing.T) {
	original := DefaultLocale()
	defer SetDefaultLocale(original)

	SetDefaultLocale("en")
	if DefaultLocale() != LocaleEN {
		t.Fatalf("expected en-US default, got %s", DefaultLocale())
	}
}
