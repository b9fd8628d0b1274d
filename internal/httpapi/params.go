package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var errInvalidTaskID = errors.New("task id must be an integer")

func parseTaskID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidTaskID
	}
	return id, nil
}
