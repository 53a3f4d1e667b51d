//go:build unit
// +build unit

package v1

import (
	"bytes"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testKeypairID = "0d7bafa6-61cb-4bb5-bafa-9c5232bb1f01"

func TestMessageHandler_Encrypt_Success(t *testing.T) {
	mockService := new(MockMessageService)
	handler := NewMessageHandler(mockService)

	mockService.
		On("Encrypt", mock.Anything, testKeypairID, "AB", 2).
		Return([]*big.Int{big.NewInt(2440455)}, nil)

	requestBody := `{"keypair_id": "` + testKeypairID + `", "message": "AB", "chunk_size": 2}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/messages/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2440455")
	mockService.AssertExpectations(t)
}

func TestMessageHandler_Encrypt_DefaultChunkSize(t *testing.T) {
	mockService := new(MockMessageService)
	handler := NewMessageHandler(mockService)

	mockService.
		On("Encrypt", mock.Anything, testKeypairID, "hello", DefaultChunkSize).
		Return([]*big.Int{big.NewInt(1), big.NewInt(2)}, nil)

	requestBody := `{"keypair_id": "` + testKeypairID + `", "message": "hello"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/messages/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestMessageHandler_Encrypt_BlockTooLarge(t *testing.T) {
	mockService := new(MockMessageService)
	handler := NewMessageHandler(mockService)

	mockService.
		On("Encrypt", mock.Anything, testKeypairID, "zzzz", 4).
		Return(nil, rsaDomain.ErrBlockTooLarge)

	requestBody := `{"keypair_id": "` + testKeypairID + `", "message": "zzzz", "chunk_size": 4}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/messages/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageHandler_Encrypt_MissingMessage(t *testing.T) {
	mockService := new(MockMessageService)
	handler := NewMessageHandler(mockService)

	requestBody := `{"keypair_id": "` + testKeypairID + `"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/messages/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Encrypt")
}

func TestMessageHandler_Decrypt_Success(t *testing.T) {
	mockService := new(MockMessageService)
	handler := NewMessageHandler(mockService)

	mockService.
		On("Decrypt", mock.Anything, testKeypairID, []*big.Int{big.NewInt(2440455)}).
		Return("AB", nil)

	requestBody := `{"keypair_id": "` + testKeypairID + `", "cipher_blocks": ["2440455"]}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/messages/decrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AB")
	mockService.AssertExpectations(t)
}

func TestMessageHandler_Decrypt_MalformedBlock(t *testing.T) {
	mockService := new(MockMessageService)
	handler := NewMessageHandler(mockService)

	requestBody := `{"keypair_id": "` + testKeypairID + `", "cipher_blocks": ["12x4"]}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/messages/decrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Decrypt")
}
