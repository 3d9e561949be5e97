package phone

import (
	"net/url"
	"strings"
	"time"
)

// FallbackDelay é o tempo que o cliente aguarda antes de abrir o link web
// quando o esquema nativo não abriu o aplicativo.
const FallbackDelay = 2 * time.Second

type MessageLinks struct {
	Phone           string `json:"phone"`
	Native          string `json:"native_url"`
	Web             string `json:"web_url"`
	Preferred       string `json:"preferred_url"`
	FallbackDelayMS int64  `json:"fallback_delay_ms"`
}

// IsMobileSafari detecta user agents de iPhone/iPad/iPod, onde o link
// nativo abre o aplicativo diretamente.
func IsMobileSafari(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	return strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipad") ||
		strings.Contains(ua, "ipod")
}

// encodeText codifica a mensagem com %20 para espaços, como o WhatsApp espera.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// BuildLinks monta os links nativo e web para uma conversa com o número
// já normalizado (+5511...) e a mensagem pré-preenchida.
func BuildLinks(normalized, text, userAgent string) MessageLinks {
	number := strings.TrimPrefix(normalized, "+")
	encoded := encodeText(text)

	links := MessageLinks{
		Phone:           normalized,
		Native:          "whatsapp://send?phone=" + number + "&text=" + encoded,
		Web:             "https://wa.me/" + number + "?text=" + encoded,
		FallbackDelayMS: FallbackDelay.Milliseconds(),
	}

	if IsMobileSafari(userAgent) {
		links.Preferred = links.Native
	} else {
		links.Preferred = links.Web
	}
	return links
}
