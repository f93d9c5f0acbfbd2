package http

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/dchest/uniuri"
)

var simpleRequest = []byte("GET /api/users HTTP/1.1\r\nHost: example.com\r\nAccept: application/json\r\nUser-Agent: shape-httpmsg/1.0\r\n\r\n")

var requestWithBody = []byte("POST /api/users HTTP/1.1\r\nHost: example.com\r\nContent-Type: application/json\r\nContent-Length: 55\r\n\r\n{\"name\":\"John Doe\",\"email\":\"john@example.com\",\"age\":30}")

var simpleResponse = []byte("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: 25\r\nServer: shape-httpmsg/1.0\r\n\r\n{\"status\":\"ok\",\"count\":42}")

func benchmarkParse(b *testing.B, data []byte) {
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_SimpleRequest(b *testing.B)   { benchmarkParse(b, simpleRequest) }
func BenchmarkParse_RequestWithBody(b *testing.B) { benchmarkParse(b, requestWithBody) }
func BenchmarkParse_SimpleResponse(b *testing.B)  { benchmarkParse(b, simpleResponse) }

func BenchmarkParse_RandomHeaders(b *testing.B) {
	var buf bytes.Buffer
	buf.WriteString("GET /" + uniuri.New() + " HTTP/1.1\r\n")
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&buf, "X-%s: %s\r\n", uniuri.NewLen(10), uniuri.NewLen(40))
	}
	buf.WriteString("\r\n")
	benchmarkParse(b, buf.Bytes())
}

func BenchmarkParseAST_SimpleRequest(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseAST(simpleRequest); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecoder_SimpleResponse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewDecoder(bytes.NewReader(simpleResponse), DefaultChunkSize).Decode(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalJSON_SimpleResponse(b *testing.B) {
	resp, err := ParseResponse(simpleResponse)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := resp.MarshalJSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	input := string(simpleRequest)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(input)
	}
}

func BenchmarkDetectMessageType(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = DetectMessageType(simpleResponse)
	}
}
