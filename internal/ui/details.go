package ui

import (
	"fmt"
	"strings"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/ui/logic"
)

// buildDocumentDetails renders one document and its result header as plain text for the pager
func buildDocumentDetails(res *domain.SearchResult, doc domain.Document, resolve func(string) string) string {
	var b strings.Builder
	row := func(label, value string) {
		if value == "" {
			value = logic.Placeholder
		}
		fmt.Fprintf(&b, "%-16s %s\n", label+":", value)
	}

	fmt.Fprintf(&b, "%s · document %d\n\n", res.Ticker, doc.ID)
	row("Category", doc.Category)
	row("Type", doc.Type)
	row("Status", doc.Status)
	row("Delivered", logic.FormatDate(doc.DeliveredAt))
	row("Delivered (raw)", doc.DeliveredAt)
	row("Reference", logic.FormatDate(doc.ReferenceDate))
	row("Reference (raw)", doc.ReferenceDate)

	download := doc.DownloadPath
	if resolve != nil && download != "" {
		download = resolve(download)
	}
	row("Download", download)
	row("FNET page", doc.ExternalURL)

	b.WriteString("\n")
	row("Ticker", res.Ticker)
	row("CNPJ", res.Registration())
	row("Listed", logic.FormatCount(res.ListedCount))
	row("Total on FNET", logic.FormatCount(res.TotalAvailable))
	row("Fetched", res.FetchedAt)

	return b.String()
}
