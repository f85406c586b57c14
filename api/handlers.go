package api

import (
	"net/http"
	"reflect"

	"github.com/bingorace/bingo-server/game"
	"github.com/bingorace/bingo-server/http_utils"
	"github.com/bingorace/bingo-server/util"
)

type checkRoomRequest struct {
	ID string `validate:"required"`
}

type roomStatus struct {
	Exists      bool `json:"exists"`
	GameStarted bool `json:"gameStarted"`
}

// CheckRoom lets a client verify a room id is joinable before opening a
// websocket: the room must exist and its game must not have started.
func (s *Server) CheckRoom(w http.ResponseWriter, r *http.Request) {
	req := checkRoomRequest{
		ID: r.URL.Query().Get("id"),
	}

	vErr := http_utils.ValidateStruct(util.Validate, req)

	if !reflect.ValueOf(vErr).IsZero() {
		http_utils.SendResponse(w, http.StatusBadRequest, vErr)
		return
	}

	exists, started := s.manager.Registry().RoomStatus(req.ID)

	if !exists {
		http_utils.SendResponse(w, http.StatusNotFound, http_utils.NewBaseResponse(false, game.ErrRoomNotFound.Error()))
		return
	}

	if started {
		http_utils.SendResponse(w, http.StatusConflict, http_utils.NewBaseResponse(false, game.ErrGameInProgress.Error()))
		return
	}

	http_utils.SendResponse(w, http.StatusOK, http_utils.NewDataResponse("Room is joinable", roomStatus{
		Exists:      true,
		GameStarted: false,
	}))
}
