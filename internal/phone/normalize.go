package phone

import (
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

const DefaultCountryCode = "55"

type Normalizer struct {
	CountryCode string
	Log         logrus.FieldLogger
}

func NewNormalizer(countryCode string, log logrus.FieldLogger) *Normalizer {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return &Normalizer{CountryCode: countryCode, Log: log}
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize converte um telefone livre em +<país><número>.
// Não é um formatador E.164 validado: entradas fora dos formatos
// conhecidos recebem apenas o "+" e geram um aviso no log.
func (n *Normalizer) Normalize(raw string) string {
	digits := digitsOnly(raw)
	cc := n.CountryCode

	switch {
	case strings.HasPrefix(digits, cc) && len(digits) >= 12:
		return "+" + digits
	case len(digits) == 11:
		return "+" + cc + digits
	case len(digits) == 10:
		// formato antigo sem o 9 do celular: DDD + 8 dígitos
		return "+" + cc + digits[:2] + "9" + digits[2:]
	}

	if n.Log != nil {
		n.Log.WithFields(logrus.Fields{
			"raw":    raw,
			"digits": len(digits),
		}).Warn("phone number in unexpected format, using best-effort normalization")
	}
	return "+" + digits
}

// Normalize usa o código de país padrão (Brasil) sem logger.
func Normalize(raw string) string {
	return (&Normalizer{CountryCode: DefaultCountryCode}).Normalize(raw)
}
