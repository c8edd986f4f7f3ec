package ui

import "net/http"

// spinnerSVG is the app's loading indicator: three dots pulsing in
// sequence. Purely decorative, no state.
const spinnerSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="120" height="30" viewBox="0 0 120 30" fill="currentColor">
  <circle cx="15" cy="15" r="9">
    <animate attributeName="opacity" values="1;0.2;1" dur="1s" repeatCount="indefinite" begin="0s"/>
  </circle>
  <circle cx="60" cy="15" r="9">
    <animate attributeName="opacity" values="1;0.2;1" dur="1s" repeatCount="indefinite" begin="0.2s"/>
  </circle>
  <circle cx="105" cy="15" r="9">
    <animate attributeName="opacity" values="1;0.2;1" dur="1s" repeatCount="indefinite" begin="0.4s"/>
  </circle>
</svg>
`

// Spinner returns the animated SVG document.
func Spinner() string {
	return spinnerSVG
}

// SpinnerHandler serves the spinner with the SVG content type.
func SpinnerHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(spinnerSVG))
}
