package combat

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultFleet lists ship lengths in placement order: 9 cells over 7 ships.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// PlaceFleet fills a fresh board by generate-and-test: random bow and
// orientation per ship, resampled on every ShipPlacementError. maxAttempts
// bounds the samples for the whole fleet.
func PlaceFleet(rng *rand.Rand, size int, fleet []int, maxAttempts int) (*Board, error) {
	b := NewBoard(size)
	attempts := 0
	for _, length := range fleet {
		for {
			attempts++
			if attempts > maxAttempts {
				return nil, ErrPlacementExhausted
			}
			bow := Coord{rng.Intn(size), rng.Intn(size)}
			err := b.PlaceShip(NewShip(bow, length, Orientation(rng.Intn(2))))
			if err == nil {
				break
			}
			var pe *ShipPlacementError
			if !errors.As(err, &pe) {
				return nil, err
			}
		}
	}
	b.BeginPlay()
	return b, nil
}

// RandomBoard restarts PlaceFleet from an empty board until it succeeds or
// maxRestarts restarts have failed. It also reports how many restarts it took.
func RandomBoard(rng *rand.Rand, size int, fleet []int, maxAttempts, maxRestarts int) (*Board, int, error) {
	for restarts := 0; restarts <= maxRestarts; restarts++ {
		b, err := PlaceFleet(rng, size, fleet, maxAttempts)
		if err == nil {
			return b, restarts, nil
		}
		if !errors.Is(err, ErrPlacementExhausted) {
			return nil, restarts, err
		}
	}
	return nil, maxRestarts, fmt.Errorf("%w: %d restarts of %d attempts", ErrPlacementExhausted, maxRestarts, maxAttempts)
}
