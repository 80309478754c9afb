package routes

import (
	"fmt"
	"html"
	"net/http"
)

// PrivacyPolicyHandler serves the Privacy Policy content
func PrivacyPolicyHandler(contactEmail string) http.HandlerFunc {
	email := html.EscapeString(contactEmail)
	page := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8">
		<meta name="viewport" content="width=device-width, initial-scale=1.0">
		<title>Privacy Policy</title>
	</head>
	<body>
		<h1>Privacy Policy</h1>
		<p>In Town helps you decide which contacts to visit when you are in their city.</p>
		<p>The app reads your address book on your device only. Your swipe choices stay on your device unless you connect it to a server you run.</p>
		<p>We do not sell, share or upload your contacts.</p>
		<p>Contact us at <a href="mailto:%[1]s">%[1]s</a> for questions.</p>
	</body>
	</html>
	`, email)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, page)
	}
}
