package devserver

import (
	"log"
	"time"

	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates an empty database with a small catalog so the CLI works
// out of the box. A non-empty games table leaves everything untouched.
func Seed() {
	var count int64
	DB.Model(&Game{}).Count(&count)
	if count > 0 {
		return
	}

	rating := func(v float64) *float64 { return &v }

	games := []Game{
		{ID: "hollow-knight", Title: "Hollow Knight", Developer: "Team Cherry", Publisher: "Team Cherry", Description: "Descend into a sprawling, ruined kingdom of insects.", Rating: rating(4.8), Image: "/images/hollow-knight.png"},
		{ID: "celeste", Title: "Celeste", Developer: "Maddy Makes Games", Publisher: "Maddy Makes Games", Description: "Climb the mountain.", Rating: rating(4.6), Image: "/images/celeste.png"},
		{ID: "hades", Title: "Hades", Developer: "Supergiant Games", Publisher: "Supergiant Games", Description: "Defy the god of the dead.", Rating: rating(4.7)},
		{ID: "stardew-valley", Title: "Stardew Valley", Developer: "ConcernedApe", Publisher: "ConcernedApe", Description: "Build the farm of your dreams.", Rating: rating(4.5)},
		{ID: "outer-wilds", Title: "Outer Wilds", Developer: "Mobius Digital", Publisher: "Annapurna Interactive", Description: "A solar system trapped in a time loop."},
	}
	tags := []TagAssignment{
		{GameID: "hollow-knight", Tag: "Metroidvania"},
		{GameID: "hollow-knight", Tag: "Action"},
		{GameID: "celeste", Tag: "Platformer"},
		{GameID: "hades", Tag: "Action"},
		{GameID: "hades", Tag: "Roguelike"},
		{GameID: "stardew-valley", Tag: "Simulation"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	demo := User{ID: xid.New().String(), Name: "demo", PasswordHash: string(hash)}

	reviews := []Review{
		{ID: xid.New().String(), GameID: "hollow-knight", UserID: demo.ID, Rating: rating(5), Review: "Still the benchmark.", CreatedAt: time.Now().UTC()},
		{ID: xid.New().String(), GameID: "celeste", UserID: demo.ID, Rating: rating(4.5), Review: "Brutal and kind at once.", CreatedAt: time.Now().UTC()},
	}

	root := Discussion{ID: xid.New().String(), GameID: "hollow-knight", UserID: demo.ID, DiscussionText: "Anyone beaten the Path of Pain?", CreatedAt: time.Now().UTC()}
	reply := Discussion{ID: xid.New().String(), GameID: "hollow-knight", UserID: demo.ID, DiscussionText: "Once. Never again.", ReplyID: root.ID, CreatedAt: time.Now().UTC()}

	DB.Create(&games)
	DB.Create(&tags)
	DB.Create(&demo)
	DB.Create(&reviews)
	DB.Create(&root)
	DB.Create(&reply)

	log.Println("Seeded development catalog.")
}
