package handler

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope returned to the Lambda runtime.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Record is the projection of one object written to the response body.
type Record struct {
	Key          string `json:"Key"`
	LastModified string `json:"LastModified"`
	Size         int64  `json:"Size"`
	StorageClass string `json:"StorageClass"`
}

type errorBody struct {
	Error string `json:"error"`
}

func okResponse(records []Record) Response {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return errorResponse(err)
	}
	return Response{StatusCode: http.StatusOK, Body: string(data)}
}

func errorResponse(err error) Response {
	data, _ := json.Marshal(errorBody{Error: err.Error()})
	return Response{StatusCode: http.StatusInternalServerError, Body: string(data)}
}
