// Package report renders order lists as spreadsheets for download.
package report

import (
	"fmt"
	"io"
	"strings"

	"hospitalfood/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ordersSheet = "Orders"
)

var orderHeaders = []any{
	"Order ID", "Date", "Session", "Patient", "Room", "Bed", "Floor",
	"Food", "Order status", "Delivery status",
	"Pantry staff", "Pantry location", "Delivery person", "Delivery location",
	"Special notes", "Cooking notes", "Delivery notes",
}

// FileName names the export of one day, e.g. orders_2024-05-01.xlsx.
func FileName(date string) string {
	if date == "" {
		date = "all"
	}
	return fmt.Sprintf("orders_%s.xlsx", date)
}

// WriteOrders writes one row per order below a bold header row.
func WriteOrders(w io.Writer, orders []queries.OrderView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &orderHeaders); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastColumn, err := excelize.ColumnNumberToName(len(orderHeaders))
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(ordersSheet, "A1", lastColumn+"1", style); err != nil {
		return err
	}

	for i, view := range orders {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return cellErr
		}
		row := orderRow(view)
		if err = f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return err
		}
	}

	if err = f.SetColWidth(ordersSheet, "A", "A", 38); err != nil {
		return err
	}
	if err = f.SetColWidth(ordersSheet, "H", "H", 40); err != nil {
		return err
	}
	if err = f.SetPanes(ordersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return f.Write(w)
}

func orderRow(view queries.OrderView) []any {
	var person string
	if view.DeliveryPerson != nil {
		person = view.DeliveryPerson.Name
	}

	return []any{
		view.ID.String(),
		view.OrderDate.Format(queries.DateLayout),
		view.Session.String(),
		view.Patient.Name,
		view.Patient.RoomNumber,
		view.Patient.BedNumber,
		view.Patient.FloorNumber,
		describeItems(view.Items),
		view.OrderStatus.String(),
		view.DeliveryStatus.String(),
		view.Pantry.Name,
		view.PantryLocation,
		person,
		view.DeliveryLocation,
		view.SpecialNotes,
		view.CookingSpecialNotes,
		view.DeliverySpecialNotes,
	}
}

// describeItems renders "2 x Soup (warm); 1 x Bread".
func describeItems(items []queries.FoodItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		part := fmt.Sprintf("%d x %s", item.Quantity, item.Name)
		if item.Instructions != "" {
			part += " (" + item.Instructions + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
