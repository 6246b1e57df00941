package validator

import (
	"regexp"
	"strings"

	"ecokart/internal/usecase"
)

// ルール別メッセージ（元画面の文言）。
// 必須フィールドが空のときは種別に関わらず汎用のrequiredメッセージを返す。
const (
	msgRequired   = "This field is required."
	msgEmail      = "Please enter a valid email address."
	msgPhone      = "Please enter a valid phone number."
	msgCardNumber = "Please enter a valid card number."
	msgExpiry     = "Please enter a valid expiry date (MM/YY)."
	msgCVV        = "Please enter a valid CVV."
	msgZip        = "Please enter a valid ZIP code."
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,}$`)
	cardRe     = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)
	expiryRe   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe      = regexp.MustCompile(`^\d{3,4}$`)
	zipRe      = regexp.MustCompile(`^\d{6}(-\d{4})?$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// Validate はステートレスな述語。フィールド種別ごとの書式ルールを適用する。
func (v *checkoutValidator) Validate(field string, value string) usecase.FieldResult {
	value = strings.TrimSpace(value)

	// 必須チェック
	if value == "" {
		return invalid(msgRequired)
	}

	switch field {
	case "email":
		if !emailRe.MatchString(value) {
			return invalid(msgEmail)
		}
	case "phone":
		// 数字以外を取り除いてから判定（10桁以上）
		if !phoneRe.MatchString(nonDigitRe.ReplaceAllString(value, "")) {
			return invalid(msgPhone)
		}
	case "cardNumber":
		if !cardRe.MatchString(value) {
			return invalid(msgCardNumber)
		}
	case "expiry":
		if !expiryRe.MatchString(value) {
			return invalid(msgExpiry)
		}
	case "cvv":
		if !cvvRe.MatchString(value) {
			return invalid(msgCVV)
		}
	case "zip":
		if !zipRe.MatchString(value) {
			return invalid(msgZip)
		}
	}

	return usecase.FieldResult{Valid: true}
}

func invalid(msg string) usecase.FieldResult {
	return usecase.FieldResult{Valid: false, Message: msg}
}

// FormatCardNumber は数字だけを残して4桁ごとにスペースを入れる。
func FormatCardNumber(s string) string {
	digits := nonDigitRe.ReplaceAllString(s, "")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry は数字だけを残してMM/YY形式に整形する。
func FormatExpiry(s string) string {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
