package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/shooter/config"
	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
)

// CharacterFrames holds the decoded, scaled frames for every action of one
// character type. Width and Height come from the first Idle frame and size
// the character's collision rectangle.
type CharacterFrames struct {
	CharType string
	Frames   map[config.StateID][]image.Image
	Width    int
	Height   int
}

// Loader reads images from a file system laid out as
// img/<charType>/<Action>/<i>.png. Decoded images are cached by path.
type Loader struct {
	fsys   fs.FS
	cache  map[string]image.Image
	logger *log.Logger
}

func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		fsys:   fsys,
		cache:  make(map[string]image.Image),
		logger: logger,
	}
}

// LoadImage decodes the image at p.
func (l *Loader) LoadImage(p string) (image.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

// LoadScaled decodes the image at p and resizes it to int(w*scale) x int(h*scale).
func (l *Loader) LoadScaled(p string, scale float64) (image.Image, error) {
	img, err := l.LoadImage(p)
	if err != nil {
		return nil, err
	}
	return Scale(img, scale), nil
}

// Scale resizes img by scale with nearest-neighbour sampling so pixel art
// stays crisp. A scale of 1 returns img unchanged.
func Scale(img image.Image, scale float64) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// CountFrames returns how many consecutive frames 0.png, 1.png, ... exist in dir.
func (l *Loader) CountFrames(dir string) int {
	n := 0
	for {
		if _, err := fs.Stat(l.fsys, path.Join(dir, fmt.Sprintf("%d.png", n))); err != nil {
			return n
		}
		n++
	}
}

// LoadCharacter loads every action animation of charType. Frames that are
// missing or broken are replaced with placeholders so the game stays playable.
func (l *Loader) LoadCharacter(charType string, scale float64, fallbackW, fallbackH int) CharacterFrames {
	cf := CharacterFrames{
		CharType: charType,
		Frames:   make(map[config.StateID][]image.Image),
	}

	loaded := make(map[config.StateID][]image.Image)
	var firstErr error
	defs := config.AnimationsFor(charType)

	for _, state := range []config.StateID{config.Idle, config.Running, config.Jump} {
		dir := path.Join("img", charType, state.String())
		count := l.CountFrames(dir)
		if count == 0 {
			count = defs[state].Frames
		}
		if count < 1 {
			count = 1
		}

		frames := make([]image.Image, count)
		for i := 0; i < count; i++ {
			img, err := l.LoadScaled(path.Join(dir, fmt.Sprintf("%d.png", i)), scale)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			frames[i] = img
			if cf.Width == 0 {
				cf.Width, cf.Height = img.Bounds().Dx(), img.Bounds().Dy()
			}
		}
		loaded[state] = frames
	}

	if idle := loaded[config.Idle]; len(idle) > 0 && idle[0] != nil {
		cf.Width, cf.Height = idle[0].Bounds().Dx(), idle[0].Bounds().Dy()
	}
	if cf.Width == 0 {
		cf.Width = int(float64(fallbackW) * scale)
		cf.Height = int(float64(fallbackH) * scale)
	}

	missing := 0
	for state, frames := range loaded {
		for i, img := range frames {
			if img == nil {
				frames[i] = Placeholder(cf.Width, cf.Height, placeholderColor(charType))
				missing++
			}
		}
		cf.Frames[state] = frames
	}

	if missing > 0 {
		l.logger.Warn("using placeholder frames", "char", charType, "missing", missing, "error", firstErr)
	}

	return cf
}

// LoadBullet loads the bullet icon, or a placeholder of the fallback size.
func (l *Loader) LoadBullet(p string, fallbackW, fallbackH int) image.Image {
	img, err := l.LoadImage(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("bullet image unusable", "path", p, "error", err)
		} else {
			l.logger.Warn("bullet image missing", "path", p)
		}
		return Placeholder(fallbackW, fallbackH, config.Colors.Bullet)
	}
	return img
}

// Placeholder returns a solid w x h image.
func Placeholder(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func placeholderColor(charType string) color.Color {
	if charType == config.Enemy.CharType {
		return config.Colors.Enemy
	}
	return config.Colors.Player
}
