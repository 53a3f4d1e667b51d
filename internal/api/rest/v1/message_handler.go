package v1

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"textbook_rsa_service/internal/domain/keys"
	rsaDomain "textbook_rsa_service/internal/domain/rsa"

	"github.com/gin-gonic/gin"
)

// DefaultChunkSize is used when an encryption request omits chunk_size.
const DefaultChunkSize = 3

// MessageHandler defines the interface for handling message operations
type MessageHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type messageHandler struct {
	messageService keys.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService keys.MessageService) MessageHandler {
	return &messageHandler{
		messageService: messageService,
	}
}

// Encrypt handles the POST request to encrypt a message under a stored
// keypair.
func (handler *messageHandler) Encrypt(ctx *gin.Context) {
	var request EncryptMessageRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid message data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	chunkSize := request.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	cipherBlocks, err := handler.messageService.Encrypt(ctx, request.KeypairID, request.Message, chunkSize)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, rsaDomain.ErrByteOutOfRange) || errors.Is(err, rsaDomain.ErrBlockTooLarge) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error encrypting message: %v", err)})
		return
	}

	response := EncryptMessageResponse{CipherBlocks: make([]string, len(cipherBlocks))}
	for i, block := range cipherBlocks {
		response.CipherBlocks[i] = block.String()
	}

	ctx.JSON(http.StatusOK, response)
}

// Decrypt handles the POST request to decrypt cipher blocks under a stored
// keypair.
func (handler *messageHandler) Decrypt(ctx *gin.Context) {
	var request DecryptMessageRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid message data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	cipherBlocks := make([]*big.Int, len(request.CipherBlocks))
	for i, raw := range request.CipherBlocks {
		block, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("cipher block %d is not a decimal integer: %q", i, raw)})
			return
		}
		cipherBlocks[i] = block
	}

	text, err := handler.messageService.Decrypt(ctx, request.KeypairID, cipherBlocks)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error decrypting message: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, DecryptMessageResponse{Message: text})
}
