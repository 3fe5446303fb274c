// file: internals/features/absensi/controller/stream_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	helperAuth "absensiku_backend/internals/helpers/auth"

	"absensiku_backend/internals/features/absensi/stream"
)

/* =========================
   Live subscription via WebSocket
   Pengganti onSnapshot di frontend lama: client connect sekali,
   semua perubahan classes/students/attendance di namespace-nya
   didorong sebagai event JSON. Unsubscribe otomatis saat koneksi
   putus (tidak ada listener bocor).
   ========================= */

type StreamController struct {
	Hub *stream.Hub
}

func NewStreamController(hub *stream.Hub) *StreamController {
	return &StreamController{Hub: hub}
}

// UpgradeRequired: guard sebelum handler websocket.
func UpgradeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (ctl *StreamController) Handle() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		raw, _ := conn.Locals(helperAuth.LocUserID).(string)
		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			_ = conn.Close()
			return
		}

		sub := ctl.Hub.Subscribe(userID)
		defer sub.Unsubscribe()

		// Reader hanya untuk mendeteksi close dari client.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case evt, ok := <-sub.C:
				if !ok {
					return // hub ditutup / subscriber dilepas
				}
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("[WARN] stream: gagal kirim event user=%s: %v", userID, err)
					return
				}
			case <-done:
				return
			}
		}
	})
}
