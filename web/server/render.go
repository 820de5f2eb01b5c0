package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmineEl59/ProjetRayTracer/pkg/renderer"
)

// Message types sent over the render websocket
const (
	MessageTile     = "tile"
	MessageConsole  = "console"
	MessageComplete = "complete"
	MessageError    = "error"
)

const writeTimeout = 5 * time.Second

// TileInfo places a tile in the final image, in pixels with y growing downward
type TileInfo struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	TileNumber int `json:"tileNumber"` // Completion order (1-based)
	TotalTiles int `json:"totalTiles"`
}

// RenderMessage is one JSON frame of the render websocket. Fields not used by a type are omitted.
type RenderMessage struct {
	RenderID string `json:"renderId"`
	Type     string `json:"type"`
	*TileInfo

	ImageData string          `json:"imageData,omitempty"` // Base64 encoded PNG
	ElapsedMs int64           `json:"elapsedMs,omitempty"`
	Message   string          `json:"message,omitempty"`
	Console   *ConsoleMessage `json:"console,omitempty"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// handleRender renders a scene and streams finished tiles over a websocket
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	sceneObj, err := s.loadScene(sceneName)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	renderID := uuid.NewString()
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client never sends anything, a read error means it went away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	messages := make(chan RenderMessage, 64)
	writerDone := make(chan struct{})
	go s.writeMessages(ctx, conn, messages, writerDone)

	consoleChan := make(chan ConsoleMessage, 50)
	consoleDone := make(chan struct{})
	go s.streamConsoleMessages(ctx, renderID, consoleChan, messages, consoleDone)

	logger := log.With().Str("render_id", renderID).Str("scene", sceneName).Logger().
		Hook(NewConsoleHook(consoleChan))

	rt := renderer.NewRaytracer(sceneObj)
	if s.maxDepth > 0 {
		rt.SetMaxDepth(s.maxDepth)
	}

	startTime := time.Now()
	img, _, err := renderer.Render(ctx, rt, renderer.RenderConfig{
		TileSize:   s.tileSize,
		NumWorkers: s.workers,
		Logger:     logger,
	}, func(tile renderer.TileCompletionResult) {
		s.sendTile(ctx, logger, renderID, messages, tile)
	})

	close(consoleChan)
	<-consoleDone

	final := RenderMessage{RenderID: renderID, Type: MessageComplete, ElapsedMs: time.Since(startTime).Milliseconds()}
	if err == nil {
		final.ImageData, err = imageToBase64PNG(img)
	}
	if err != nil {
		final = RenderMessage{RenderID: renderID, Type: MessageError, Message: err.Error()}
	}
	send(ctx, messages, final)

	close(messages)
	<-writerDone

	if ctx.Err() == nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
	}
}

// sendTile encodes a finished tile and queues it for the client
func (s *Server) sendTile(ctx context.Context, logger zerolog.Logger, renderID string, messages chan<- RenderMessage, tile renderer.TileCompletionResult) {
	imageData, err := imageToBase64PNG(tile.TileImage)
	if err != nil {
		logger.Error().Err(err).Int("tile", tile.TileNumber).Msg("encoding tile failed")
		return
	}

	send(ctx, messages, RenderMessage{
		RenderID: renderID,
		Type:     MessageTile,
		TileInfo: &TileInfo{
			X:          tile.Bounds.Min.X,
			Y:          tile.Bounds.Min.Y,
			Width:      tile.Bounds.Dx(),
			Height:     tile.Bounds.Dy(),
			TileNumber: tile.TileNumber,
			TotalTiles: tile.TotalTiles,
		},
		ImageData: imageData,
	})
}

// writeMessages is the only goroutine writing to conn
func (s *Server) writeMessages(ctx context.Context, conn *websocket.Conn, messages <-chan RenderMessage, done chan<- struct{}) {
	defer close(done)
	for msg := range messages {
		if ctx.Err() != nil {
			// Client disconnected, drain without writing
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Str("render_id", msg.RenderID).Msg("websocket write failed")
		}
	}
}

// streamConsoleMessages forwards log lines of a render to the client
func (s *Server) streamConsoleMessages(ctx context.Context, renderID string, consoleChan <-chan ConsoleMessage, messages chan<- RenderMessage, done chan<- struct{}) {
	defer close(done)
	for consoleMsg := range consoleChan {
		select {
		case messages <- RenderMessage{RenderID: renderID, Type: MessageConsole, Console: &consoleMsg}:
		case <-ctx.Done():
		default:
			// Channel full, skip message to avoid blocking
		}
	}
}

// send queues msg unless the client is gone
func send(ctx context.Context, messages chan<- RenderMessage, msg RenderMessage) {
	select {
	case messages <- msg:
	case <-ctx.Done():
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
