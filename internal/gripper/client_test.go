package gripper

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Full status payload as the control service emits it
const mockStatusResponse = `{"ok":true,"status":{"ready":true,"open":true,"closed":false,"gripped":false,"width_01mm":500,"force":50,"diameter_01mm":100,"grip_type":1}}`

func TestNewClient(t *testing.T) {
	client := NewClient("192.168.1.40", 8080)

	if client.BaseURL != "http://192.168.1.40:8080" {
		t.Errorf("BaseURL = %s, want http://192.168.1.40:8080", client.BaseURL)
	}

	if client.HTTPClient == nil {
		t.Error("HTTPClient should not be nil")
	}
}

func TestNewClientWithURL(t *testing.T) {
	client := NewClientWithURL("http://10.0.0.5:9090")

	if client.BaseURL != "http://10.0.0.5:9090" {
		t.Errorf("BaseURL = %s, want http://10.0.0.5:9090", client.BaseURL)
	}
}

func TestCall_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"extra":"kept"}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	payload, err := client.Call(context.Background(), http.MethodPost, "/api/open", nil)

	if err != nil {
		t.Fatalf("Call() error = %v, want nil", err)
	}

	// The parsed body comes back unmodified
	if payload["extra"] != "kept" {
		t.Errorf(`payload["extra"] = %v, want "kept"`, payload["extra"])
	}
}

func TestCall_SerializesBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodPost, "/api/set_force", map[string]int{"value": 42})

	if err != nil {
		t.Fatalf("Call() error = %v, want nil", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", gotContentType)
	}

	var body map[string]int
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if body["value"] != 42 {
		t.Errorf(`body["value"] = %d, want 42`, body["value"])
	}
}

func TestCall_NoBodyOmitsContentType(t *testing.T) {
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	if _, err := client.Call(context.Background(), http.MethodPost, "/api/open", nil); err != nil {
		t.Fatalf("Call() error = %v, want nil", err)
	}

	if gotContentType != "" {
		t.Errorf("Content-Type = %q, want empty for bodyless request", gotContentType)
	}
}

func TestCall_HTTPErrorWithBodyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok":false,"error":"modbus write failed"}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodPost, "/api/close", nil)

	if err == nil {
		t.Fatal("Call() should fail for HTTP 500")
	}
	if !IsHTTPError(err) {
		t.Errorf("error should be HTTP error, got %T %v", err, err)
	}
	if ErrorMessage(err) != "modbus write failed" {
		t.Errorf("ErrorMessage = %q, want %q", ErrorMessage(err), "modbus write failed")
	}
}

func TestCall_HTTPErrorEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodGet, "/api/status", nil)

	if err == nil {
		t.Fatal("Call() should fail for HTTP 500")
	}

	// No body error field: message falls back to the status line
	if ErrorMessage(err) != "Internal Server Error" {
		t.Errorf("ErrorMessage = %q, want %q", ErrorMessage(err), "Internal Server Error")
	}
}

func TestCall_OkFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error":"device busy"}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodPost, "/api/close", nil)

	if err == nil {
		t.Fatal("Call() should fail for ok:false")
	}
	if !IsProtocolError(err) {
		t.Errorf("error should be protocol error, got %T %v", err, err)
	}
	if ErrorMessage(err) != "device busy" {
		t.Errorf("ErrorMessage = %q, want %q", ErrorMessage(err), "device busy")
	}
}

func TestCall_OkMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"fine"}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodPost, "/api/open", nil)

	if err == nil {
		t.Fatal("Call() should fail when ok is absent")
	}
	if !IsProtocolError(err) {
		t.Errorf("error should be protocol error, got %T %v", err, err)
	}
}

func TestCall_MalformedJSONDegradesToEmptyObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodPost, "/api/open", nil)

	// Parse failures do not surface as parse errors; the empty object simply
	// lacks ok:true, so the call fails at the protocol level
	if err == nil {
		t.Fatal("Call() should fail for a non-JSON 200 body")
	}
	if !IsProtocolError(err) {
		t.Errorf("error should be protocol error, got %T %v", err, err)
	}
}

func TestCall_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before use

	client := NewClientWithURL(server.URL)
	_, err := client.Call(context.Background(), http.MethodGet, "/api/status", nil)

	if err == nil {
		t.Fatal("Call() should fail against a closed server")
	}
	if !IsNetworkError(err) {
		t.Errorf("error should be network error, got %T %v", err, err)
	}
}

func TestFetchStatus_ParsesAllFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(mockStatusResponse))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	status, err := client.FetchStatus(context.Background())

	if err != nil {
		t.Fatalf("FetchStatus() error = %v, want nil", err)
	}

	want := Status{
		Ready:        true,
		Open:         true,
		Closed:       false,
		Gripped:      false,
		Width01MM:    500,
		Force:        50,
		Diameter01MM: 100,
		GripTypeRaw:  1,
	}
	if *status != want {
		t.Errorf("FetchStatus() = %+v, want %+v", *status, want)
	}
}

func TestFetchStatus_MissingStatusObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.FetchStatus(context.Background())

	if err == nil {
		t.Fatal("FetchStatus() should fail when the status object is absent")
	}
	if !IsProtocolError(err) {
		t.Errorf("error should be protocol error, got %T %v", err, err)
	}
}

func TestCommandEndpointMapping(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*Client, context.Context) error
		wantPath string
		wantBody string
	}{
		{"open", (*Client).Open, "/api/open", ""},
		{"close", (*Client).Close, "/api/close", ""},
		{"move", (*Client).Move, "/api/move", ""},
		{"flex", (*Client).Flex, "/api/flex", ""},
		{"stop", (*Client).Stop, "/api/stop", ""},
		{"set_force", func(c *Client, ctx context.Context) error {
			return c.SetForce(ctx, 500)
		}, "/api/set_force", `{"value":500}`},
		{"set_diameter", func(c *Client, ctx context.Context) error {
			return c.SetDiameter(ctx, 1000)
		}, "/api/set_diameter", `{"value":1000}`},
		{"set_griptype", func(c *Client, ctx context.Context) error {
			return c.SetGripType(ctx, 1)
		}, "/api/set_griptype", `{"value":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath, gotBody string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				raw, _ := io.ReadAll(r.Body)
				gotBody = string(raw)
				w.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()

			client := NewClientWithURL(server.URL)
			if err := tt.call(client, context.Background()); err != nil {
				t.Fatalf("%s error = %v, want nil", tt.name, err)
			}

			if gotMethod != http.MethodPost {
				t.Errorf("method = %s, want POST", gotMethod)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %s, want %s", gotPath, tt.wantPath)
			}
			if gotBody != tt.wantBody {
				t.Errorf("body = %q, want %q", gotBody, tt.wantBody)
			}
		})
	}
}
