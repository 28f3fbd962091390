// Package utils holds small helpers shared by the server and the client:
// JSON response writing, the resty HTTP client and trace id generation.
package utils
