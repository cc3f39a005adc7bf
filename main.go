package main

import (
	"flag"
	"fmt"
	"log"

	"campuschat/auth"
	"campuschat/chat"
	"campuschat/config"
	"campuschat/feed"
	"campuschat/storage"
	"campuschat/ui"
)

func main() {
	openChat := flag.String("chat", "", "open this conversation on startup (directory id or name)")
	flag.Parse()

	profile, profilePath, err := config.LoadOrCreate()
	if err != nil {
		log.Fatalf("startup failed while loading profile: %v", err)
	}

	fmt.Printf("User ID:        %s\n", profile.UserID)
	fmt.Printf("Display Name:   %s\n", profile.DisplayName)
	fmt.Printf("Campus:         %s\n", profile.Campus)
	fmt.Printf("Profile File:   %s\n", profilePath)

	dataDir, err := config.ResolveDataDir()
	if err != nil {
		log.Fatalf("startup failed while resolving data directory: %v", err)
	}

	store, dbPath, err := storage.Open(dataDir)
	if err != nil {
		log.Fatalf("startup failed while opening database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("database close error: %v", err)
		}
	}()
	fmt.Printf("Database File:  %s\n", dbPath)

	authService := auth.NewService(store)
	if user, ok := authService.CurrentUser(); ok {
		fmt.Printf("Signed in:      %s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Println("Signed in:      no (using local profile identity)")
	}

	err = ui.Run(ui.RunOptions{
		Profile:     profile,
		Store:       store,
		Directory:   chat.SeedDirectory(),
		Transcripts: chat.NewSeededStore(),
		Auth:        authService,
		Feed:        feed.NewService(store),
		OpenChat:    *openChat,
	})
	if err != nil {
		log.Fatalf("ui exited with error: %v", err)
	}
}
