package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as the JSON body of a response with statusCode and
// returns the number of body bytes written.
//
// Object keys are emitted in sorted order at every level, whatever the
// declaration order of struct fields. If data cannot be encoded the
// response is a plain 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := MarshalSorted(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// MarshalSorted encodes data with the keys of every JSON object sorted.
//
// The value is encoded once, decoded into generic maps and slices, and
// encoded again: encoding/json writes map keys sorted, struct fields in
// declaration order. Numbers keep their literal form.
func MarshalSorted(data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err = dec.Decode(&generic); err != nil {
		return nil, err
	}

	return json.Marshal(generic)
}
