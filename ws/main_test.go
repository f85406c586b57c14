package ws

import (
	"math/rand"
	"os"
	"testing"
	"time"
)

var testManager *Manager

func TestMain(m *testing.M) {
	testManager = NewManager(
		[]string{"http://localhost:3000"},
		time.Minute,
		rand.New(rand.NewSource(1)),
	)

	os.Exit(m.Run())
}
