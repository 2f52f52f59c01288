package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

func TestManager_HandleConnection(t *testing.T) {
	m := NewManager()
	connected := make(chan struct{})
	release := make(chan struct{})

	e := echo.New()
	e.GET("/ws/:topic", func(c echo.Context) error {
		return m.HandleConnection(c, "driver-1", c.Param("topic"), func(client *Client) error {
			close(connected)
			if err := client.Send(constants.EventViewport, map[string]int{"samples": 3}); err != nil {
				return err
			}
			<-release
			return nil
		})
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/run-1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	<-connected
	assert.Equal(t, 1, m.Count("run-1"))

	assert.Equal(t, 0, m.Count("run-2"))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventViewport, msg.Event)
	assert.JSONEq(t, `{"samples":3}`, string(msg.Data))

	close(release)
	assert.Eventually(t, func() bool { return m.Count("run-1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestClient_SendErrorWithoutConn(t *testing.T) {
	c := &Client{ID: "x", Topic: "t"}
	assert.NoError(t, c.SendError(constants.ErrorRunNotFound, "run not found"))
}

func TestManager_AddRemove(t *testing.T) {
	m := NewManager()
	a := &Client{ID: "a", Topic: "run"}
	b := &Client{ID: "b", Topic: "run"}
	m.AddClient(a)
	m.AddClient(b)
	assert.Equal(t, 2, m.Count("run"))

	m.RemoveClient(a)
	m.RemoveClient(a)
	assert.Equal(t, 1, m.Count("run"))
	m.RemoveClient(b)
	assert.Equal(t, 0, m.Count("run"))
}

func TestUpgradeRejectsPlainRequest(t *testing.T) {
	m := NewManager()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.HandleConnection(c, "u", "run", func(*Client) error { return nil })
	assert.Error(t, err)
	assert.Equal(t, 0, m.Count("run"))
}
