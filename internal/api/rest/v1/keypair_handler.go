// Package v1 exposes the REST surface: keypair generation and record
// management plus message encryption and decryption.
package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"textbook_rsa_service/internal/domain/keys"
	rsaDomain "textbook_rsa_service/internal/domain/rsa"

	"github.com/gin-gonic/gin"
)

// KeypairHandler defines the interface for handling keypair operations
type KeypairHandler interface {
	Generate(ctx *gin.Context)
	ListRecords(ctx *gin.Context)
	GetRecordByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type keypairHandler struct {
	keypairService keys.KeypairService
}

// NewKeypairHandler creates a new KeypairHandler
func NewKeypairHandler(keypairService keys.KeypairService) KeypairHandler {
	return &keypairHandler{
		keypairService: keypairService,
	}
}

func recordToResponse(record *keys.KeypairRecord) KeypairRecordResponse {
	return KeypairRecordResponse{
		ID:              record.ID,
		DigitCount:      record.DigitCount,
		Modulus:         record.Modulus,
		PublicExponent:  record.PublicExponent,
		PrivateExponent: record.PrivateExponent,
		DateTimeCreated: record.DateTimeCreated,
	}
}

// Generate handles the POST request to generate a keypair and store it as a
// record.
func (handler *keypairHandler) Generate(ctx *gin.Context) {
	var request GenerateKeypairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid keypair data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	params, err := request.ToParams()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	record, err := handler.keypairService.Generate(ctx, params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, rsaDomain.ErrInvalidDigitCount) || errors.Is(err, rsaDomain.ErrExponentSelectionFailed) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error generating keypair: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, recordToResponse(record))
}

// ListRecords handles the GET request to list keypair records with optional
// query parameters.
func (handler *keypairHandler) ListRecords(ctx *gin.Context) {
	query := keys.NewKeypairQuery()

	for param, target := range map[string]*int{
		"digitCount": &query.DigitCount,
		"limit":      &query.Limit,
		"offset":     &query.Offset,
	} {
		if raw := ctx.Query(param); len(raw) > 0 {
			value, err := strconv.Atoi(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %v", param, err)})
				return
			}
			*target = value
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	records, err := handler.keypairService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing keypair records: %v", err)})
		return
	}

	listResponse := []KeypairRecordResponse{}
	for _, record := range records {
		listResponse = append(listResponse, recordToResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetRecordByID handles the GET request for a single keypair record.
func (handler *keypairHandler) GetRecordByID(ctx *gin.Context) {
	id := ctx.Param("id")

	record, err := handler.keypairService.GetByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("keypair record not found: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, recordToResponse(record))
}

// DeleteByID handles the DELETE request for a keypair record.
func (handler *keypairHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := handler.keypairService.DeleteByID(ctx, id); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting keypair record: %v", err)})
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}
