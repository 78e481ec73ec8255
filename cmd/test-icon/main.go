package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/lmittmann/tint"

	appicon "github.com/visiona/castview/modules/appicon"
)

// Version information
const version = "v0.1.0"

func main() {
	// Parse command-line flags
	iconPath := flag.String("path", "", "Icon file path (default: resolve via env/build defaults)")
	backend := flag.String("backend", "auto", "Decode backend: auto, native, gstreamer")
	savePath := flag.String("save", "", "Render the loaded surface to a PNG at this path (optional)")
	timeout := flag.Duration("timeout", 0, "GStreamer decode timeout (0 = default)")
	maxSize := flag.Int64("max-size", 0, "Max icon file size in bytes for the native backend (0 = default)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	noColor := flag.Bool("no-color", false, "Disable colored log output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("test-icon %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
		NoColor:    *noColor,
	}))
	slog.SetDefault(logger)

	// Parse backend
	var backendMode appicon.Backend
	switch *backend {
	case "auto":
		backendMode = appicon.BackendAuto
	case "native":
		backendMode = appicon.BackendNative
	case "gstreamer":
		backendMode = appicon.BackendGStreamer
	default:
		log.Fatalf("Invalid backend: %s (must be auto, native, or gstreamer)", *backend)
	}

	// Print banner
	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Icon Load Test - CastView Module                ║\n")
	fmt.Printf("║                      Version %s                        ║\n", version)
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")
	fmt.Printf("Configuration:\n")
	if *iconPath != "" {
		fmt.Printf("  Icon Path:     %s\n", *iconPath)
	} else if env, ok := os.LookupEnv(appicon.EnvVar); ok {
		fmt.Printf("  Icon Path:     (from %s) %q\n", appicon.EnvVar, env)
	} else {
		fmt.Printf("  Icon Path:     (build-mode default)\n")
	}
	fmt.Printf("  Backend:       %s\n", *backend)
	if *savePath != "" {
		fmt.Printf("  Save To:       %s\n", *savePath)
	}
	fmt.Printf("\n")

	// Create loader
	loader, err := appicon.New(appicon.Config{
		Path:          *iconPath,
		Backend:       backendMode,
		MaxFileSize:   *maxSize,
		DecodeTimeout: *timeout,
	})
	if err != nil {
		log.Fatalf("Failed to create loader: %v", err)
	}

	// Load the icon
	slog.Info("Loading icon...")
	start := time.Now()
	surface, err := loader.Load()
	if err != nil {
		slog.Error("Icon load failed", "error", err)
		printStats(loader.Stats())
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n")
	fmt.Printf("╭─────────────────────────────────────────────────────────╮\n")
	fmt.Printf("│ Surface Loaded\n")
	fmt.Printf("├─────────────────────────────────────────────────────────┤\n")
	fmt.Printf("│ Dimensions:         %d x %d pixels\n", surface.Width, surface.Height)
	fmt.Printf("│ Pixel Format:       %s\n", surface.Format)
	fmt.Printf("│ Bits Per Pixel:     %d\n", surface.BitsPerPixel)
	fmt.Printf("│ Stride:             %d bytes/row\n", surface.Stride)
	fmt.Printf("│ Buffer Size:        %.1f KB\n", float64(len(surface.Data))/1024)
	fmt.Printf("│ Load Time:          %s\n", elapsed.Round(time.Microsecond))
	fmt.Printf("╰─────────────────────────────────────────────────────────╯\n")
	fmt.Printf("\n")

	// Render to PNG for eyeballing
	if *savePath != "" {
		if err := saveSurface(surface, *savePath); err != nil {
			slog.Error("Failed to save surface render", "error", err)
		} else {
			slog.Info("Surface rendered", "path", *savePath)
		}
	}

	surface.Destroy()
	printStats(loader.Stats())

	slog.Info("Icon load test completed successfully")
}

// printStats prints the loader statistics box.
func printStats(stats appicon.LoaderStats) {
	fmt.Printf("\n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("                     Loader Statistics                     \n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("  Backend:            %s\n", stats.Backend)
	fmt.Printf("  Successful Loads:   %d\n", stats.Loads)
	fmt.Printf("  Failed Loads:       %d\n", stats.Failures)
	fmt.Printf("  Live Frames:        %d\n", stats.LiveFrames)
	fmt.Printf("  Live Surfaces:      %d\n", stats.LiveSurfaces)
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")
}

// saveSurface renders the surface over a checkerboard (so alpha is
// visible) and writes it as a PNG.
func saveSurface(s *appicon.Surface, path string) error {
	img, err := surfaceImage(s)
	if err != nil {
		return err
	}

	const cell = 8
	dc := gg.NewContext(s.Width, s.Height)
	for y := 0; y < s.Height; y += cell {
		for x := 0; x < s.Width; x += cell {
			if ((x/cell)+(y/cell))%2 == 0 {
				dc.SetRGB(0.8, 0.8, 0.8)
			} else {
				dc.SetRGB(0.6, 0.6, 0.6)
			}
			dc.DrawRectangle(float64(x), float64(y), cell, cell)
			dc.Fill()
		}
	}
	dc.DrawImage(img, 0, 0)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save PNG: %w", err)
	}
	return nil
}

// surfaceImage converts the surface's packed pixels to an image for
// rendering. The 8-bit-per-channel layouts are enough for a test tool;
// the 16/15/12-bit variants are reported, not rendered.
func surfaceImage(s *appicon.Surface) (image.Image, error) {
	var order [4]int // offsets of R, G, B, A within a pixel; -1 = absent
	var bpp int
	switch s.Format {
	case appicon.PixelFormatRGB24:
		order, bpp = [4]int{0, 1, 2, -1}, 3
	case appicon.PixelFormatBGR24:
		order, bpp = [4]int{2, 1, 0, -1}, 3
	case appicon.PixelFormatRGBA8888:
		order, bpp = [4]int{0, 1, 2, 3}, 4
	case appicon.PixelFormatBGRA8888:
		order, bpp = [4]int{2, 1, 0, 3}, 4
	case appicon.PixelFormatARGB8888:
		order, bpp = [4]int{1, 2, 3, 0}, 4
	case appicon.PixelFormatABGR8888:
		order, bpp = [4]int{3, 2, 1, 0}, 4
	default:
		return nil, fmt.Errorf("rendering %s surfaces is not supported", s.Format)
	}

	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		row := s.Data[y*s.Stride:]
		for x := 0; x < s.Width; x++ {
			px := row[x*bpp:]
			off := img.PixOffset(x, y)
			img.Pix[off+0] = px[order[0]]
			img.Pix[off+1] = px[order[1]]
			img.Pix[off+2] = px[order[2]]
			if order[3] >= 0 {
				img.Pix[off+3] = px[order[3]]
			} else {
				img.Pix[off+3] = 255
			}
		}
	}
	return img, nil
}
