package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/narmadatraders/billing-api/internal/application/service"
	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/response"
	"github.com/narmadatraders/billing-api/pkg/apperror"
)

// BillHandler handles bill compilation, preview, export and printing
type BillHandler struct {
	sessionService *service.SessionService
	billService    *service.BillService
	printService   *service.PrintService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(
	sessionService *service.SessionService,
	billService *service.BillService,
	printService *service.PrintService,
) *BillHandler {
	return &BillHandler{
		sessionService: sessionService,
		billService:    billService,
		printService:   printService,
	}
}

// Compile handles compiling the session into a BillDocument
// @Summary Compile Bill
// @Description Compile the row list plus header metadata into a finalized bill
// @Tags bills
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/bill [post]
func (h *BillHandler) Compile(c *gin.Context) {
	bill, ok := h.compile(c, false)
	if !ok {
		return
	}
	response.OK(c, "Bill compiled successfully", bill)
}

// Preview handles rendering the print view
// @Summary Preview Bill
// @Description Render the printable bill document inline
// @Tags bills
// @Produce html
// @Param id path string true "Session ID"
// @Success 200
// @Router /sessions/{id}/bill/preview [get]
func (h *BillHandler) Preview(c *gin.Context) {
	bill, ok := h.compile(c, false)
	if !ok {
		return
	}

	doc, err := h.printService.RenderDocument(bill)
	if err != nil {
		response.Error(c, apperror.ErrInternalServer)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// Export handles streaming the bill document as a download
// @Summary Export Bill
// @Description Stream the printable bill document for PDF conversion
// @Tags bills
// @Produce html
// @Param id path string true "Session ID"
// @Success 200
// @Router /sessions/{id}/bill/export [get]
func (h *BillHandler) Export(c *gin.Context) {
	bill, ok := h.compile(c, true)
	if !ok {
		return
	}

	doc, err := h.printService.RenderDocument(bill)
	if err != nil {
		response.Error(c, apperror.ErrInternalServer)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bill.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// Print handles sending the bill to the thermal printer
// @Summary Print Bill
// @Description Compile the bill and send it to the configured printer
// @Tags bills
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/bill/print [post]
func (h *BillHandler) Print(c *gin.Context) {
	bill, ok := h.compile(c, true)
	if !ok {
		return
	}

	// Best effort, no retry; the failure detail stays in the log and the
	// user gets a generic message.
	if err := h.printService.PrintBill(bill); err != nil {
		log.Printf("Error: %v", err)
		response.Error(c, apperror.ErrPrintFailed)
		return
	}

	response.OK(c, "Bill sent to printer", nil)
}

// compile fetches the session snapshot and runs the bill compiler, writing
// the error response itself on failure. forExport applies the stricter
// positive-grand-total precondition.
func (h *BillHandler) compile(c *gin.Context, forExport bool) (*entity.BillDocument, bool) {
	id, ok := SessionID(c)
	if !ok {
		return nil, false
	}

	session, err := h.sessionService.Get(id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}

	grandTotal := entity.ParseAmount(session.GrandTotal)

	var bill *entity.BillDocument
	if forExport {
		bill, err = h.billService.CompileForExport(session.Items, session.CustomerName, session.HasteName, grandTotal)
	} else {
		bill, err = h.billService.Compile(session.Items, session.CustomerName, session.HasteName, grandTotal)
	}
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return bill, true
}
