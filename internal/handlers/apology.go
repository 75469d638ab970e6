package handlers

import "github.com/gin-gonic/gin"

type ErrorResponse struct {
	Error string `json:"error"`
}

// apology renders the user-facing error page with a message and status.
func apology(c *gin.Context, status int, message string) {
	c.HTML(status, "apology.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
