package v1

import (
	"textbook_rsa_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// BasePath is the URL prefix of this API version.
const BasePath = "/api/v1"

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keypairService keys.KeypairService,
	messageService keys.MessageService) {

	v1 := r.Group(BasePath)

	// Keypair routes
	keypairHandler := NewKeypairHandler(keypairService)
	v1.POST("/keypairs", keypairHandler.Generate)
	v1.GET("/keypairs", keypairHandler.ListRecords)
	v1.GET("/keypairs/:id", keypairHandler.GetRecordByID)
	v1.DELETE("/keypairs/:id", keypairHandler.DeleteByID)

	// Message routes
	messageHandler := NewMessageHandler(messageService)
	v1.POST("/messages/encrypt", messageHandler.Encrypt)
	v1.POST("/messages/decrypt", messageHandler.Decrypt)
}
