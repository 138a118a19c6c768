package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/decker502/mascot/pkg/embedded"
	"github.com/decker502/mascot/pkg/utils"
)

// ErrNoAudioContext is returned by LoadSoundEffect when the manager was created
// without an audio context (headless runs and tests).
var ErrNoAudioContext = errors.New("audio context not available")

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for textures and sound effects,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Resources are addressed by ID (texture keys such as "bocchi-upleft", sound IDs
// such as "pakupakuSound"), resolved to files via data/resources.yaml.
// A texture whose file is missing is replaced by a generated placeholder, so the
// mascot stays fully playable without art assets.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    return err
//	}
//	img := rm.ImageByID("bocchi-front")
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for loaded sound effects: path -> Player
	placeholders map[string]*ebiten.Image // Generated placeholders: resource ID -> Image
	fontCache    map[string]*text.GoTextFace
	defaultFont  *text.GoTextFaceSource // Lazily parsed Go Regular, used when no font file is configured
	audioContext *audio.Context           // Global audio context, nil in headless mode

	// YAML resource configuration
	config      *ResourceConfig          // Parsed YAML configuration
	resourceMap map[string]string        // Resource ID -> file path mapping for quick lookup
	imageDefs   map[string]ImageResource // Resource ID -> image definition (placeholder size)
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding sound effects.
//     May be nil, in which case every sound fails to load with ErrNoAudioContext.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		placeholders: make(map[string]*ebiten.Image),
		fontCache:    make(map[string]*text.GoTextFace),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
		imageDefs:    make(map[string]ImageResource),
	}
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// The file is read through the embedded package, so the copy compiled into the
// binary is used when available.
//
// Parameters:
//   - configPath: Path to the resources.yaml file (e.g., "data/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.ParseResourceConfig(data)
}

// ParseResourceConfig parses YAML resource configuration content and rebuilds
// the ID -> path mapping.
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config: %w", err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Resource config loaded: %d groups, %d resources", len(config.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
// For example:
//
//	bocchi-front -> assets/images/bocchi-front.png
//	pakupakuSound -> assets/sounds/pakupaku.mp3
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.imageDefs = make(map[string]ImageResource)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
			rm.imageDefs[img.ID] = img
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".mp3" // Default to MP3 for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// GroupNames returns the configured resource group names in sorted order.
func (rm *ResourceManager) GroupNames() []string {
	if rm.config == nil {
		return nil
	}
	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadImageByID loads an image resource using its resource ID.
// The resource ID must be defined in the YAML configuration file.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// ImageByID returns the texture for a resource ID and never returns nil.
// Missing or undecodable files are replaced by a placeholder generated once per ID.
func (rm *ResourceManager) ImageByID(resourceID string) *ebiten.Image {
	if img, ok := rm.placeholders[resourceID]; ok {
		return img
	}
	if path, ok := rm.resourceMap[resourceID]; ok {
		if img := rm.imageCache[path]; img != nil {
			return img
		}
	}

	img, err := rm.LoadImageByID(resourceID)
	if err == nil {
		return img
	}

	def := rm.imageDefs[resourceID]
	log.Printf("[ResourceManager] Texture %s unavailable (%v), using placeholder", resourceID, err)
	placeholder := utils.NewPlaceholderImage(resourceID, def.Width, def.Height)
	rm.placeholders[resourceID] = placeholder
	return placeholder
}

// LoadSoundEffect loads a sound effect from the specified path and caches it for future use.
// Sound effects are one-shot and not wrapped in an infinite loop.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - ErrNoAudioContext when the manager has no audio context.
//   - An error if the file cannot be opened, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to load sound effect %s: %w", path, ErrNoAudioContext)
	}

	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded sound effect from the cache, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadResourceGroup loads all resources in a specified group.
//
// Missing textures fall back to placeholders and missing sounds are skipped with a
// warning; only an unknown group or an unloaded config is an error.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		rm.ImageByID(img.ID)
	}

	loadedSounds := 0
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundEffect(rm.resourceMap[sound.ID]); err != nil {
			log.Printf("[ResourceManager] Warning: sound %s in group %s: %v", sound.ID, groupName, err)
			continue
		}
		loadedSounds++
	}

	log.Printf("[ResourceManager] Group %s loaded: %d images, %d/%d sounds",
		groupName, len(group.Images), loadedSounds, len(group.Sounds))
	return nil
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates a text face with the given size.
// The font face is cached for future use with a cache key combining path and size.
//
// Parameters:
//   - path: The file path to the font resource (e.g., "assets/fonts/label.ttf").
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontCache[cacheKey] = face
	return face, nil
}

// DefaultFont returns a face of the bundled Go Regular font at the given size.
// It is used for button labels and the debug overlay, and never requires files on disk.
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.defaultFont == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse default font: %w", err)
		}
		rm.defaultFont = source
	}

	face := &text.GoTextFace{
		Source:    rm.defaultFont,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontCache[cacheKey] = face
	return face, nil
}
