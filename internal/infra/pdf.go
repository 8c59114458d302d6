package infra

// pdf.go
// Recibo interno de venta con go-pdf/fpdf, en formato de papel termico:
// encabezado de la cantina, fecha e identificador, tabla de lineas, total en
// bolivares y en USD, y metodo de pago cuando lo hay.
// El archivo se escribe en storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hjanner/2MS/internal/model"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateReciboPDF generates a PDF receipt for a registered Venta.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateReciboPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", venta.ID.String())
	filePath := filepath.Join(storagePath, fileName)

	// 74mm x 105mm, cercano al papel de recibo termico
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Cantina 2MS", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Venta %s", venta.ID.String()[:8]), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.FechaHora.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if venta.CICliente != nil {
		pdf.CellFormat(contentW, 4, "Cliente: "+*venta.CICliente, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // producto
	col2 := contentW * 0.16 // cantidad
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 4, "Producto", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 4, "Cant", "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 4, "Subtotal Bs", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, d := range venta.Detalles {
		nombre := d.CodProducto
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		subtotal := d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		pdf.CellFormat(col1, 4, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, fmt.Sprintf("%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 4, subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL Bs", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, venta.MontoTotalBs.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 4, "Total USD", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, venta.MontoTotalUSD.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	for _, p := range venta.Pagos {
		pdf.CellFormat(col1+col2, 4, "Pago "+p.MetodoPago, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 4, p.Monto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	if venta.Tipo == model.VentaCredito {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(contentW, 4, "Venta a credito", "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
