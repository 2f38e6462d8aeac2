package fxtwitter

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	TimelinePath = "data.timeline"
	CodePath     = "code"
	MessagePath  = "message"
)

// LimitTimeline keeps the first count entries of data.timeline. Payloads
// without a non-empty timeline array are returned untouched.
func LimitTimeline(payload []byte, count int) ([]byte, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}

	timeline := gjson.GetBytes(payload, TimelinePath)
	if !timeline.IsArray() {
		return payload, nil
	}

	entries := timeline.Array()
	if len(entries) == 0 || len(entries) <= count {
		return payload, nil
	}

	kept := lo.Map(lo.Subset(entries, 0, uint(count)), func(item gjson.Result, _ int) string {
		return item.Raw
	})

	return sjson.SetRawBytes(payload, TimelinePath, []byte("["+strings.Join(kept, ",")+"]"))
}

// CheckAPICode reports the API-level error carried by payload, if any.
func CheckAPICode(payload []byte) error {
	code := gjson.GetBytes(payload, CodePath)
	if code.Exists() && code.Type == gjson.Number && code.Int() == http.StatusOK {
		return nil
	}

	return &APIError{
		Code:    int(code.Int()),
		Message: gjson.GetBytes(payload, MessagePath).String(),
	}
}
