// Package ciscosupport is a client for the Cisco Support APIs.
//
// A Client authenticates against the Cisco OAuth2 token endpoint using
// the client-credentials grant and exposes typed access to the Software
// Suggestion, Bug Search, and EoX (End-of-Life/End-of-Sale) API
// families.
//
// Usage:
//
//	client, err := ciscosupport.New(clientID, clientSecret)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bugs, err := client.Bug.SearchByKeyword(ctx, "memory leak", &ciscosupport.BugSearchOptions{
//		Status: "O",
//		Limit:  25,
//	})
//
// Tokens are acquired lazily and cached until expiry; a request is
// never sent with an expired token. A Client is not safe for concurrent
// use beyond the token cache itself.
package ciscosupport
