package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	priceStyle  = cellStyle.Align(lipgloss.Right)
)

const priceColumn = 4

func renderUser(user models.User) string {
	lines := []string{
		titleStyle.Render(user.Name),
		fmt.Sprintf("login: %s", user.Login),
		fmt.Sprintf("role:  %s", user.Role),
		fmt.Sprintf("id:    %d", user.UserID),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderItems(page models.Page[models.Item]) string {
	if len(page.Data) == 0 {
		return helpStyle.Render(fmt.Sprintf("No items (total %d)", page.Total))
	}

	rows := make([][]string, 0, len(page.Data))
	for _, item := range page.Data {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Slug,
			string(item.Status),
			utils.FormatPrice(item.Price),
			strings.Join(item.Tags, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "SLUG", "STATUS", "PRICE", "TAGS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == priceColumn:
				return priceStyle
			default:
				return cellStyle
			}
		})

	footer := helpStyle.Render(fmt.Sprintf("page %d, %d per page, %d total", page.Page, page.Limit, page.Total))
	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), footer)
}
