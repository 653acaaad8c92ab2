package config

import "image/color"

// CursorConfig contains the custom cursor marker configuration
type CursorConfig struct {
	Smoothing   float64 // Fraction of the remaining distance covered per frame (0.0-1.0]
	Radius      float64 // Marker ring radius in pixels
	DotRadius   float64 // Inner dot radius in pixels
	StrokeWidth float64
	HoverScale  float64 // marker scale while the pointer is over a button
	ScaleSpeed  float64 // how fast the marker scale follows its target
}

// ParticleConfig contains the background particle field configuration
type ParticleConfig struct {
	Count     int
	RadiusMin float64 // inclusive
	RadiusMax float64 // exclusive
	SpeedMin  float64 // per axis, inclusive
	SpeedMax  float64 // per axis, exclusive
	Alpha     uint8
}

// RippleConfig contains button click ripple configuration
type RippleConfig struct {
	MaxRadius float64 // pixels
	Duration  float32 // seconds
	Alpha     float64 // starting alpha (0.0-1.0)
}

// HoverConfig contains button hover scale configuration
type HoverConfig struct {
	Scale     float64 // target scale while hovered
	LerpSpeed float64 // how fast the scale follows its target
}

// ScrollConfig contains page scrolling configuration
type ScrollConfig struct {
	WheelStep float64 // pixels per wheel notch
	KeyStep   float64 // pixels per frame while an arrow key is held
	Smoothing float64 // easing factor toward the scroll target
}

// RevealConfig contains scroll-triggered reveal configuration
type RevealConfig struct {
	Threshold   float64 // fraction of viewport height a section top must pass
	Duration    float32 // seconds
	SlideOffset float64 // pixels the section slides up while revealing
}

// TypewriterConfig contains the typed headline configuration
type TypewriterConfig struct {
	Phrases      []string
	Loop         bool // cycle through the phrases; false types the first one and stops
	TypeFrames   int  // frames per typed character
	DeleteFrames int  // frames per deleted character
	HoldFrames   int  // frames a complete phrase stays on screen
	CaretFrames  int  // caret blink half-period
}

// ThemeConfig contains the light and dark palettes
type ThemeConfig struct {
	FadeSeconds float32
	StartDark   bool
	Light       Palette
	Dark        Palette
}

// Palette is one color scheme for the page
type Palette struct {
	Background  color.RGBA
	HeroTop     color.RGBA
	HeroBottom  color.RGBA
	Text        color.RGBA
	Muted       color.RGBA
	Accent      color.RGBA
	Surface     color.RGBA
	Particle    color.RGBA
	Cursor      color.RGBA
	CursorHover color.RGBA // marker tint over a button
}

// ParallaxConfig contains hero background parallax configuration
type ParallaxConfig struct {
	Factor    float64 // background offset per scrolled pixel
	MaxShift  float64 // pixels the hero glow travels across the full pointer range
	Smoothing float64 // easing factor toward the pointer shift
	GlowSize  float64 // hero glow radius in pixels
}

// SectionLayout describes one content section of the page
type SectionLayout struct {
	Title string
	Body  string
	Y     float64 // top of the section in page coordinates
	H     float64
}

// ButtonLayout describes one call-to-action button of the page
type ButtonLayout struct {
	Label string
	X, Y  float64 // top-left in page coordinates
	W, H  float64
}

// ProfileConfig contains the click-to-swap profile picture configuration
type ProfileConfig struct {
	X, Y     float64 // center in page coordinates
	Radius   float64
	Initials []string // one entry per picture variant
	Tints    []color.RGBA
}

// PageConfig describes the scrolling page layout
type PageConfig struct {
	Greeting   string
	Height     float64
	HeroHeight float64
	Margin     float64
	Sections   []SectionLayout
	Buttons    []ButtonLayout
	CellSize   int // resolv cell size for hit testing
}

type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// FrameDelta is the simulated time of one frame in seconds
func (c *Config) FrameDelta() float32 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float32(c.TPS)
}

var C *Config
var Cursor CursorConfig
var Particles ParticleConfig
var Ripple RippleConfig
var Hover HoverConfig
var Scroll ScrollConfig
var Reveal RevealConfig
var Typewriter TypewriterConfig
var Theme ThemeConfig
var Parallax ParallaxConfig
var Profile ProfileConfig
var Page PageConfig
var Debug DebugConfig

type DebugConfig struct {
	Headless bool  // Run the frame loop without a window
	Frames   int   // Frames to run in headless mode (0 = until interrupted)
	Seed     int64 // Particle seed (0 = time based)
	Overlay  bool  // Draw hit boxes and frame stats
}

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Ink       = color.RGBA{R: 24, G: 26, B: 38, A: 255}
	Paper     = color.RGBA{R: 246, G: 244, B: 239, A: 255}
	Indigo    = color.RGBA{R: 99, G: 102, B: 241, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Coral     = color.RGBA{R: 255, G: 111, B: 97, A: 255}
	Slate     = color.RGBA{R: 100, G: 110, B: 130, A: 255}
	Mist      = color.RGBA{R: 180, G: 188, B: 205, A: 255}
	SkyBlue   = color.RGBA{R: 74, G: 144, B: 226, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "folio",
		TPS:    60,
	}

	Cursor = CursorConfig{
		Smoothing:   0.15,
		Radius:      14,
		DotRadius:   3,
		StrokeWidth: 2,
		HoverScale:  2.5,
		ScaleSpeed:  0.25,
	}

	Particles = ParticleConfig{
		Count:     120,
		RadiusMin: 1,
		RadiusMax: 3,
		SpeedMin:  -0.5,
		SpeedMax:  0.5,
		Alpha:     140,
	}

	Ripple = RippleConfig{
		MaxRadius: 90,
		Duration:  0.6,
		Alpha:     0.45,
	}

	Hover = HoverConfig{
		Scale:     1.05,
		LerpSpeed: 0.2,
	}

	Scroll = ScrollConfig{
		WheelStep: 60,
		KeyStep:   12,
		Smoothing: 0.12,
	}

	Reveal = RevealConfig{
		Threshold:   0.85,
		Duration:    0.6,
		SlideOffset: 40,
	}

	Typewriter = TypewriterConfig{
		Phrases: []string{
			"Backend engineer.",
			"Game tinkerer.",
			"Open source contributor.",
		},
		Loop:         true,
		TypeFrames:   6,
		DeleteFrames: 3,
		HoldFrames:   90,
		CaretFrames:  30,
	}

	Theme = ThemeConfig{
		FadeSeconds: 0.4,
		StartDark:   true,
		Light: Palette{
			Background:  Paper,
			HeroTop:     color.RGBA{R: 224, G: 231, B: 255, A: 255},
			HeroBottom:  Paper,
			Text:        Ink,
			Muted:       Slate,
			Accent:      Indigo,
			Surface:     White,
			Particle:    color.RGBA{R: 99, G: 102, B: 241, A: 255},
			Cursor:      Indigo,
			CursorHover: SkyBlue,
		},
		Dark: Palette{
			Background:  Ink,
			HeroTop:     color.RGBA{R: 40, G: 30, B: 80, A: 255},
			HeroBottom:  Ink,
			Text:        color.RGBA{R: 236, G: 238, B: 245, A: 255},
			Muted:       Mist,
			Accent:      LightBlue,
			Surface:     color.RGBA{R: 36, G: 39, B: 56, A: 255},
			Particle:    White,
			Cursor:      Coral,
			CursorHover: SkyBlue,
		},
	}

	Parallax = ParallaxConfig{
		Factor:    0.5,
		MaxShift:  120,
		Smoothing: 0.1,
		GlowSize:  360,
	}

	Profile = ProfileConfig{
		X:        960,
		Y:        300,
		Radius:   110,
		Initials: []string{"AM", ":)"},
		Tints: []color.RGBA{
			Indigo,
			Coral,
		},
	}

	Page = PageConfig{
		Greeting:   "Hi, I'm Alex.",
		Height:     2400,
		HeroHeight: 640,
		Margin:     120,
		CellSize:   32,
		Sections: []SectionLayout{
			{Title: "About", Body: "I build services, tools and the odd game.", Y: 760, H: 360},
			{Title: "Projects", Body: "Realtime backends, ECS toys and CLI utilities.", Y: 1180, H: 420},
			{Title: "Writing", Body: "Notes on Go, rendering loops and tooling.", Y: 1660, H: 300},
			{Title: "Contact", Body: "Say hi, the inbox is open.", Y: 2020, H: 300},
		},
		Buttons: []ButtonLayout{
			{Label: "View work", X: 120, Y: 460, W: 180, H: 52},
			{Label: "Contact", X: 324, Y: 460, W: 160, H: 52},
		},
	}
}
