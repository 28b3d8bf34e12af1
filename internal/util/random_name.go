package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Lucky", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Bold", "Daring", "Calm", "Clever", "Brave", "Sly", "Charging", "Bouncing", "Bounding",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjective := adjectives[rand.Intn(len(adjectives))] // nolint:gosec
	animal := animals[rand.Intn(len(animals))]          // nolint:gosec

	return fmt.Sprintf("%s %s", adjective, animal)
}
