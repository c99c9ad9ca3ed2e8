package game_constants

// DefaultWords is the bundled fallback word list. The canonical list lives in
// Redis (key "words:default") so it can be edited without a redeploy; this one
// keeps rooms playable when that key is missing.
var DefaultWords = []string{
	"apple", "banana", "bicycle", "bridge", "butterfly",
	"cactus", "camera", "castle", "cloud", "compass",
	"dolphin", "dragon", "drum", "elephant", "envelope",
	"feather", "fireworks", "flashlight", "fountain", "giraffe",
	"guitar", "hammer", "helicopter", "igloo", "island",
	"kangaroo", "kite", "ladder", "lighthouse", "lobster",
	"mermaid", "microscope", "mountain", "mushroom", "octopus",
	"parachute", "penguin", "piano", "pirate", "pyramid",
	"rainbow", "robot", "rocket", "sandwich", "scarecrow",
	"snowman", "spider", "submarine", "sunflower", "telescope",
	"tornado", "tractor", "treasure", "umbrella", "unicorn",
	"volcano", "waterfall", "whale", "windmill", "wizard",
}
