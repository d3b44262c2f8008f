package response

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"
)

// CSV streams an attachment with a header row followed by rows.
// Every field is double-quoted with embedded quotes doubled.
func CSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	bw := bufio.NewWriter(w)
	writeCSVLine(bw, header)
	for _, row := range rows {
		writeCSVLine(bw, row)
	}
	_ = bw.Flush()
}

func writeCSVLine(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			_ = w.WriteByte(',')
		}
		_ = w.WriteByte('"')
		_, _ = w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString("\r\n")
}
