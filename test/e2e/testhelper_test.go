package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixforge/internal/adapter/handler"
	port "github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/config"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/imageproc"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/server"
	"github.com/marcos-nsantos/pixforge/internal/infrastructure/storage"
	"github.com/marcos-nsantos/pixforge/internal/usecase/cleanup"
	"github.com/marcos-nsantos/pixforge/internal/usecase/download"
	"github.com/marcos-nsantos/pixforge/internal/usecase/resize"
	"github.com/marcos-nsantos/pixforge/internal/usecase/upload"
)

type TestApp struct {
	Server     *httptest.Server
	Storage    port.FileStorage
	Janitor    *cleanup.Janitor
	BaseURL    string
	httpClient *http.Client
}

type appOptions struct {
	storage     port.FileStorage
	deleteDelay time.Duration
	rateLimit   *config.RateLimitConfig
}

func setupTestApp(t *testing.T, opts appOptions) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)

	fileStorage := opts.storage
	if fileStorage == nil {
		diskStorage, err := storage.NewDiskStorage(t.TempDir())
		require.NoError(t, err)
		fileStorage = diskStorage
	}

	deleteDelay := opts.deleteDelay
	if deleteDelay == 0 {
		deleteDelay = time.Hour
	}

	logger := zap.NewNop()

	invoker := resize.NewInvoker(
		imageproc.NewLanczosResizer(imageproc.DefaultJPEGQuality),
		imageproc.NewScaleResizer(imageproc.DefaultJPEGQuality),
		10*time.Second,
		logger,
	)
	janitor := cleanup.NewJanitor(fileStorage, cleanup.Config{
		Retention:     5 * time.Minute,
		SweepInterval: 2 * time.Minute,
		DeleteDelay:   deleteDelay,
	}, logger)

	var rateLimiter *middleware.RateLimiter
	if opts.rateLimit != nil {
		rateLimiter = middleware.NewRateLimiter(*opts.rateLimit)
	}

	router := server.NewRouter(server.RouterConfig{
		UploadHandler:   handler.NewUploadHandler(upload.NewService(fileStorage, upload.MaxFileSize), upload.MaxFileSize),
		ResizeHandler:   handler.NewResizeHandler(resize.NewService(fileStorage, invoker, imageproc.NewInspector()), upload.MaxFileSize),
		DownloadHandler: handler.NewDownloadHandler(download.NewService(fileStorage, janitor)),
		CleanupHandler:  handler.NewCleanupHandler(janitor),
		Sweeper:         janitor,
		RateLimiter:     rateLimiter,
		CORS:            config.CORSConfig{AllowedOrigins: []string{"*"}},
		Logger:          logger,
		Environment:     "test",
	})

	ts := httptest.NewServer(router.Engine())
	t.Cleanup(ts.Close)

	return &TestApp{
		Server:  ts,
		Storage: fileStorage,
		Janitor: janitor,
		BaseURL: ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, path, body)
}

func (app *TestApp) upload(t *testing.T, fileName, contentType string, content []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+"/upload", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	return img
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(w, h)))
	return buf.Bytes()
}

func jpegImage(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradient(w, h), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}
