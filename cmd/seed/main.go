// Command seed pre-populates a running server with smoke-test data: three
// users, two rooms owned by the first user, and a handful of messages.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var addr = flag.String("addr", "http://localhost:8080", "base URL of a running server")

type userPayload struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type roomPayload struct {
	Name          string `json:"name"`
	RoomAdminName string `json:"room_admin_name"`
}

type messagePayload struct {
	Body       string `json:"body"`
	SenderName string `json:"sender_name"`
	RoomName   string `json:"room_name"`
}

func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	users := []userPayload{
		{Name: "User 1", Password: gofakeit.Password(true, true, true, false, false, 12), Email: gofakeit.Email()},
		{Name: "User 2", Password: gofakeit.Password(true, true, true, false, false, 12), Email: gofakeit.Email()},
		{Name: "User 3", Password: gofakeit.Password(true, true, true, false, false, 12), Email: gofakeit.Email()},
	}

	log.Println("Inserting users...")
	for _, user := range users {
		if err := postJSON("/users/new", user); err != nil {
			log.Fatalf("create user %q: %v", user.Name, err)
		}
		log.Printf("Added %s.", user.Name)
	}

	rooms := []roomPayload{
		{Name: "Room 1", RoomAdminName: "User 1"},
		{Name: "Room 2", RoomAdminName: "User 1"},
	}

	log.Println("Inserting rooms...")
	for _, room := range rooms {
		if err := postJSON("/rooms/new", room); err != nil {
			log.Fatalf("create room %q: %v", room.Name, err)
		}
		log.Printf("Added %s with %s as its admin.", room.Name, room.RoomAdminName)
	}

	messages := []messagePayload{
		{Body: gofakeit.Sentence(8), SenderName: "User 2", RoomName: "Room 1"},
		{Body: gofakeit.Sentence(8), SenderName: "User 1", RoomName: "Room 1"},
		{Body: gofakeit.Sentence(8), SenderName: "User 3", RoomName: "Room 2"},
		{Body: gofakeit.Sentence(8), SenderName: "User 2", RoomName: "Room 2"},
	}

	log.Println("Inserting messages...")
	for _, message := range messages {
		if err := postJSON("/messages/new", message); err != nil {
			log.Fatalf("create message in %q: %v", message.RoomName, err)
		}
		log.Printf("Added message from %s in %s.", message.SenderName, message.RoomName)
	}

	log.Println("Seeding complete.")
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := http.Post(*addr+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
