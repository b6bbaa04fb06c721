// Package api implements the low-level RocketAPI transport.
//
// Every RocketAPI endpoint is a POST of a JSON payload to a method path
// under https://v1.rocketapi.io/, authenticated with a token header.
// Responses arrive wrapped in an envelope carrying the proxied upstream
// status code, content type and body; this package unwraps the envelope
// and maps its outcomes onto the errors package taxonomy.
//
// Callers normally use the instagram or threads packages instead of
// this one directly:
//
//	client := api.NewClient(token, 15*time.Second, nil)
//	body, err := client.Request(ctx, "instagram/user/get_info",
//		map[string]interface{}{"username": "instagram"})
package api
