package endpoint

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

type requestSpec struct {
	method       string
	registerPath string
	requestPath  string
	handler      gin.HandlerFunc
	// body is sent as-is when it is a string, JSON-encoded otherwise.
	body    interface{}
	headers map[string]string
	cookies []*http.Cookie
}

func encodeBody(body interface{}) (io.Reader, bool, error) {
	switch v := body.(type) {
	case nil:
		return http.NoBody, false, nil
	case string:
		return bytes.NewBufferString(v), true, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, false, err
		}
		return bytes.NewReader(b), true, nil
	}
}

func performRequest(r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	reader, isJSON, err := encodeBody(spec.body)
	if err != nil {
		return nil, nil, err
	}

	req := httptest.NewRequest(spec.method, spec.requestPath, reader)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}
	for _, c := range spec.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

// doRequestWithHandler mounts spec.handler at spec.registerPath and performs the request.
func doRequestWithHandler(r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	r.Handle(spec.method, spec.registerPath, spec.handler)
	return performRequest(r, spec)
}
