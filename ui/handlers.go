package ui

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"complaintscope/app"
	"complaintscope/domain/table"
	apperrors "complaintscope/internal/errors"
	"complaintscope/internal/filters"
	"complaintscope/internal/normalize"
)

// handleUpload accepts a multipart workbook upload. The payload is parsed
// before the registry is touched, so a broken file never disturbs the
// current selection.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.InvalidInput("multipart field \"file\" is required"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperrors.Wrap(err, "failed to open uploaded file"))
		return
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		respondError(c, apperrors.Wrap(err, "failed to read uploaded file"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index, err := s.service.SubmitUpload(fileHeader.Filename, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"index":   index,
		"uploads": s.service.Registry().List(),
	})
}

func (s *Server) handleListUploads(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"session_id": s.service.Registry().ID(),
		"uploads":    s.service.Registry().List(),
	})
}

func (s *Server) handleSelectUpload(c *gin.Context) {
	index, err := pathIndex(c)
	if err != nil {
		respondError(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.service.Registry().Select(index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": s.service.Registry().List()})
}

func (s *Server) handleRemoveUpload(c *gin.Context) {
	index, err := pathIndex(c)
	if err != nil {
		respondError(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.service.Registry().Remove(index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": s.service.Registry().List()})
}

func (s *Server) handleClearUploads(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.service.Registry().Clear()
	c.JSON(http.StatusOK, gin.H{"uploads": s.service.Registry().List()})
}

// handleReport runs one pipeline pass over the current upload.
//
// Query parameters: mode=single|all|selected (default all), sheet=<name>
// for single, sheets=<a,b,c> for selected, state/branch equality filters,
// from/to (2006-01-02) for an inclusive received-date range.
func (s *Server) handleReport(c *gin.Context) {
	req, err := reportRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	report, err := s.service.BuildReport(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func reportRequest(c *gin.Context) (app.AnalysisRequest, error) {
	var req app.AnalysisRequest

	switch c.DefaultQuery("mode", "all") {
	case "all":
		req.Mode = normalize.AllSheets()
	case "single":
		sheet := c.Query("sheet")
		if sheet == "" {
			return req, apperrors.InvalidInput("mode=single requires a sheet parameter")
		}
		req.Mode = normalize.SingleSheet(sheet)
	case "selected":
		var names []string
		for _, name := range strings.Split(c.Query("sheets"), ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		req.Mode = normalize.SelectedSheets(names...)
	default:
		return req, apperrors.InvalidInput("mode must be one of single, all, selected")
	}

	if state := c.Query("state"); state != "" {
		req.Filters = append(req.Filters, filters.Equals(table.ColState, state))
	}
	if branch := c.Query("branch"); branch != "" {
		req.Filters = append(req.Filters, filters.Equals(table.ColBranch, branch))
	}

	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		start, end, err := dateRangeBounds(from, to)
		if err != nil {
			return req, err
		}
		req.Filters = append(req.Filters, filters.DateRange(table.ColReceivedDate, start, end))
	}
	return req, nil
}

// dateRangeBounds parses the from/to parameters, substituting wide-open
// bounds for whichever side is omitted.
func dateRangeBounds(from, to string) (time.Time, time.Time, error) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	var err error
	if from != "" {
		if start, err = time.Parse("2006-01-02", from); err != nil {
			return start, end, apperrors.InvalidInput("from must be formatted as 2006-01-02")
		}
	}
	if to != "" {
		if end, err = time.Parse("2006-01-02", to); err != nil {
			return start, end, apperrors.InvalidInput("to must be formatted as 2006-01-02")
		}
	}
	if end.Before(start) {
		return start, end, apperrors.InvalidInput("to must not precede from")
	}
	return start, end, nil
}

func pathIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, apperrors.InvalidInput("index must be an integer")
	}
	return index, nil
}
