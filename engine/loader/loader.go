// Package loader decodes the named texture assets the field needs before the world can be built.
package loader

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-grass/common"
)

// ErrAssetFailed is wrapped by every per-asset load error.
var ErrAssetFailed = errors.New("asset failed to load")

// Texture names the world looks up.
const (
	TextureGrass   = "grass"
	TextureGround  = "ground"
	TextureSkyDome = "skydome"
)

// AssetDescription names one asset and where its encoded bytes come from.
// Data takes precedence over Path.
type AssetDescription struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Data []byte `json:"-"`
}

// AssetList is the set of assets to load.
type AssetList struct {
	Textures []AssetDescription `json:"textures"`
}

// Assets is the result of a successful load, keyed by asset name.
type Assets struct {
	Textures map[string]*common.Texture
}

// DefaultAssetList returns the grass, ground and sky dome textures expected under dir.
//
// Parameters:
//   - dir: the asset directory
//
// Returns:
//   - AssetList: the three textures
func DefaultAssetList(dir string) AssetList {
	return AssetList{Textures: []AssetDescription{
		{Name: TextureGrass, Path: filepath.Join(dir, "grass.jpg")},
		{Name: TextureGround, Path: filepath.Join(dir, "ground.jpg")},
		{Name: TextureSkyDome, Path: filepath.Join(dir, "skydome.jpg")},
	}}
}

// Loader decodes asset lists and caches the decoded textures by name.
type Loader interface {
	// Load decodes every texture in the list concurrently. Progress is reported as the fraction of
	// assets that succeeded; each failure is reported to the error handler as it happens.
	// Load succeeds only if every asset decodes.
	//
	// Parameters:
	//   - list: the assets to load
	//
	// Returns:
	//   - *Assets: the decoded assets
	//   - error: every failure joined, each wrapping ErrAssetFailed
	Load(list AssetList) (*Assets, error)

	// Get retrieves a cached texture by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the asset name
	//
	// Returns:
	//   - *common.Texture: the cached texture or nil
	Get(name string) *common.Texture

	// Textures returns a copy of the texture cache.
	Textures() map[string]*common.Texture

	// Close stops the decode workers. The cache stays readable.
	Close()
}

type loader struct {
	mu sync.RWMutex

	workers    int
	pool       worker.DynamicWorkerPool
	onProgress func(float64)
	onError    func(error)

	cache map[string]*common.Texture
}

var _ Loader = &loader{}

// NewLoader creates a Loader backed by a worker pool.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: the loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		workers: 3,
		cache:   make(map[string]*common.Texture),
	}
	for _, option := range options {
		option(l)
	}
	if l.workers < 1 {
		l.workers = 1
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, 256, 1*time.Second)
	return l
}

func (l *loader) Load(list AssetList) (*Assets, error) {
	total := len(list.Textures)
	assets := &Assets{Textures: make(map[string]*common.Texture, total)}
	if total == 0 {
		return assets, nil
	}

	var (
		wg       sync.WaitGroup
		resultMu sync.Mutex
		loaded   int
		errs     []error
	)

	for i, ad := range list.Textures {
		if cached := l.cached(ad); cached != nil {
			resultMu.Lock()
			assets.Textures[ad.Name] = cached
			loaded++
			l.progress(loaded, total)
			resultMu.Unlock()
			continue
		}

		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: ad.Name,
			Do: func() (any, error) {
				defer wg.Done()

				tex := &common.Texture{Name: ad.Name, Path: ad.Path, Data: ad.Data}
				err := tex.Decode()

				resultMu.Lock()
				defer resultMu.Unlock()
				if err != nil {
					err = fmt.Errorf("%w: %s: %w", ErrAssetFailed, ad.Name, err)
					errs = append(errs, err)
					if l.onError != nil {
						l.onError(err)
					}
					return nil, err
				}

				assets.Textures[ad.Name] = tex
				loaded++
				l.progress(loaded, total)
				return tex, nil
			},
		})
	}
	wg.Wait()

	if len(errs) > 0 {
		log.Printf("[Loader] %d of %d assets failed", len(errs), total)
		return nil, errors.Join(errs...)
	}

	l.mu.Lock()
	for name, tex := range assets.Textures {
		l.cache[name] = tex
	}
	l.mu.Unlock()

	for name, tex := range assets.Textures {
		log.Printf("[Loader] %s: %dx%d", name, tex.Width, tex.Height)
	}
	return assets, nil
}

func (l *loader) cached(ad AssetDescription) *common.Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tex, ok := l.cache[ad.Name]
	if !ok || len(ad.Data) > 0 || tex.Path != ad.Path {
		return nil
	}
	return tex
}

func (l *loader) progress(loaded, total int) {
	if l.onProgress != nil {
		l.onProgress(float64(loaded) / float64(total))
	}
}

func (l *loader) Get(name string) *common.Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache[name]
}

func (l *loader) Textures() map[string]*common.Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]*common.Texture, len(l.cache))
	for k, v := range l.cache {
		result[k] = v
	}
	return result
}

func (l *loader) Close() {
	l.pool.Stop()
}
