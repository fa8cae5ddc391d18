package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	_ "image/jpeg"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	_ "golang.org/x/image/webp"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

const (
	// fitPadding is the inset applied on every side in fit mode.
	fitPadding = 4
	// ringBottomPad is the extra canvas padding below a ringed icon.
	ringBottomPad = 2
	// ringCornerRadiusFactor scales the smaller source dimension into the
	// corner radius of a non-circular ring.
	ringCornerRadiusFactor = 0.25
	// bezierKappa approximates a quarter circle with one cubic segment.
	bezierKappa = 0.5522847498
	// maxRasterDim caps the intermediate raster for SVG sources.
	maxRasterDim = 4096
)

// RenderOptions describes one transform: target geometry, shape mask,
// scale mode and the optional selection ring.
type RenderOptions struct {
	Shape     tabs.Shape
	Scale     tabs.ScaleMode
	Target    image.Point
	Ring      tabs.RingSpec
	RingColor color.Color
}

// Render decodes data and produces a PNG-encoded icon at the target size.
// It is a pure function: identical inputs always produce identical bytes.
// Undecodable payloads fail with ErrDecodeFailure.
func Render(data []byte, opts RenderOptions) ([]byte, error) {
	if opts.Target.X <= 0 || opts.Target.Y <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", opts.Target.X, opts.Target.Y)
	}

	src, err := decodeImage(data, opts.Target)
	if err != nil {
		return nil, err
	}
	scaled, err := scaleToTarget(src, opts.Scale, opts.Target)
	if err != nil {
		return nil, err
	}
	masked, err := applyShapeMask(scaled, opts.Shape)
	if err != nil {
		return nil, err
	}

	out := masked
	if opts.Ring.Enabled {
		ringColor := opts.RingColor
		if ringColor == nil {
			ringColor = color.Transparent
		}
		srcBounds := src.Bounds()
		out = compositeRing(masked, opts.Ring, ringColor, image.Pt(srcBounds.Dx(), srcBounds.Dy()))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("%w: encoding png: %v", ErrDecodeFailure, err)
	}
	return buf.Bytes(), nil
}

// RenderVariants produces the selected and unselected outputs for one
// icon. When the ring is disabled both variants are identical.
func RenderVariants(data []byte, opts RenderOptions, selectedColor, unselectedColor color.Color) (selected, unselected []byte, err error) {
	if !opts.Ring.Enabled {
		out, err := Render(data, opts)
		if err != nil {
			return nil, nil, err
		}
		return out, cloneBytes(out), nil
	}

	selOpts := opts
	selOpts.RingColor = selectedColor
	selected, err = Render(data, selOpts)
	if err != nil {
		return nil, nil, err
	}

	unselOpts := opts
	unselOpts.RingColor = unselectedColor
	unselected, err = Render(data, unselOpts)
	if err != nil {
		return nil, nil, err
	}
	return selected, unselected, nil
}

// decodeImage turns raw bytes into pixels. SVG payloads are rasterized at
// twice the target resolution; everything else goes through the registered
// image decoders.
func decodeImage(data []byte, target image.Point) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecodeFailure)
	}
	if looksLikeSVG(data) {
		return rasterizeSVG(data, target)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return img, nil
}

// looksLikeSVG sniffs for an svg root element near the start of the payload.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

// rasterizeSVG renders an SVG at its view-box aspect ratio, sized so the
// smaller dimension is twice the larger target dimension.
func rasterizeSVG(data []byte, target image.Point) (image.Image, error) {
	svg, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	vb := svg.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, fmt.Errorf("%w: svg has no view box", ErrDecodeFailure)
	}

	maxTarget := float64(target.X)
	if target.Y > target.X {
		maxTarget = float64(target.Y)
	}
	scale := 2 * maxTarget / math.Min(vb.W, vb.H)
	if vb.W*scale > maxRasterDim || vb.H*scale > maxRasterDim {
		scale = maxRasterDim / math.Max(vb.W, vb.H)
	}
	w := int(math.Ceil(vb.W * scale))
	h := int(math.Ceil(vb.H * scale))

	svg.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	svg.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}

// scaleToTarget fits source pixels into the target rectangle per the scale
// mode. The result is always exactly target-sized with transparent fill
// where the image does not reach.
func scaleToTarget(src image.Image, mode tabs.ScaleMode, target image.Point) (*image.RGBA, error) {
	srcBounds := src.Bounds()
	sw, sh := srcBounds.Dx(), srcBounds.Dy()
	if sw <= 0 || sh <= 0 {
		return nil, fmt.Errorf("%w: source has no pixels", ErrDecodeFailure)
	}

	dst := image.NewRGBA(image.Rectangle{Max: target})
	switch mode {
	case tabs.ScaleCover:
		ratio := math.Max(float64(target.X)/float64(sw), float64(target.Y)/float64(sh))
		scaledW := max(int(math.Round(float64(sw)*ratio)), target.X)
		scaledH := max(int(math.Round(float64(sh)*ratio)), target.Y)
		scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, srcBounds, xdraw.Src, nil)
		// center-crop to target
		offX := (scaledW - target.X) / 2
		offY := (scaledH - target.Y) / 2
		xdraw.Draw(dst, dst.Bounds(), scaled, image.Pt(offX, offY), xdraw.Src)
	case tabs.ScaleFit:
		availW := max(target.X-2*fitPadding, 1)
		availH := max(target.Y-2*fitPadding, 1)
		ratio := math.Min(float64(availW)/float64(sw), float64(availH)/float64(sh))
		scaledW := max(int(math.Round(float64(sw)*ratio)), 1)
		scaledH := max(int(math.Round(float64(sh)*ratio)), 1)
		offX := (target.X - scaledW) / 2
		offY := (target.Y - scaledH) / 2
		region := image.Rect(offX, offY, offX+scaledW, offY+scaledH)
		xdraw.CatmullRom.Scale(dst, region, src, srcBounds, xdraw.Src, nil)
	case tabs.ScaleStretch:
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, srcBounds, xdraw.Src, nil)
	default:
		return nil, fmt.Errorf("invalid scale mode: %s", mode)
	}
	return dst, nil
}

// applyShapeMask clips the image to the requested shape. Square applies
// no mask; circle clips to the inscribed ellipse.
func applyShapeMask(img *image.RGBA, shape tabs.Shape) (*image.RGBA, error) {
	switch shape {
	case tabs.ShapeSquare:
		return img, nil
	case tabs.ShapeCircle:
		bounds := img.Bounds()
		w, h := bounds.Dx(), bounds.Dy()
		mask := fillMask(w, h, func(z *vector.Rasterizer) {
			ellipsePath(z, float32(w)/2, float32(h)/2, float32(w)/2, float32(h)/2)
		})
		out := image.NewRGBA(bounds)
		xdraw.DrawMask(out, bounds, img, bounds.Min, mask, image.Point{}, xdraw.Over)
		return out, nil
	default:
		return nil, fmt.Errorf("invalid shape: %s", shape)
	}
}

// compositeRing expands the canvas and strokes a selection ring at the
// outer edge: spacer + ring width on every side (spacer equals the ring
// width) plus a small fixed bottom padding. The ring is an ellipse for a
// square icon, otherwise a rounded rectangle whose corner radius follows
// the smaller source dimension.
func compositeRing(img *image.RGBA, ring tabs.RingSpec, ringColor color.Color, srcDims image.Point) *image.RGBA {
	stroke := ring.EffectiveWidth()
	expand := int(math.Ceil(2 * stroke))
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	outW := w + 2*expand
	outH := h + 2*expand + ringBottomPad

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.Draw(out, image.Rect(expand, expand, expand+w, expand+h), img, img.Bounds().Min, xdraw.Over)

	// The ring hugs the outer edge; the bottom padding stays outside it.
	ringW := float32(outW)
	ringH := float32(outH - ringBottomPad)
	sw := float32(stroke)

	var outer, inner *image.Alpha
	if w == h {
		outer = fillMask(outW, outH, func(z *vector.Rasterizer) {
			ellipsePath(z, ringW/2, ringH/2, ringW/2, ringH/2)
		})
		inner = fillMask(outW, outH, func(z *vector.Rasterizer) {
			ellipsePath(z, ringW/2, ringH/2, ringW/2-sw, ringH/2-sw)
		})
	} else {
		radius := float32(ringCornerRadiusFactor) * float32(min(srcDims.X, srcDims.Y))
		outer = fillMask(outW, outH, func(z *vector.Rasterizer) {
			roundedRectPath(z, 0, 0, ringW, ringH, radius)
		})
		inner = fillMask(outW, outH, func(z *vector.Rasterizer) {
			roundedRectPath(z, sw, sw, ringW-sw, ringH-sw, radius-sw)
		})
	}

	ringMask := subtractMask(outer, inner)
	xdraw.DrawMask(out, out.Bounds(), image.NewUniform(ringColor), image.Point{}, ringMask, image.Point{}, xdraw.Over)
	return out
}

// fillMask rasterizes a closed path into an alpha coverage mask.
func fillMask(w, h int, path func(*vector.Rasterizer)) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	path(z)
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// subtractMask returns outer minus inner, clamped at zero.
func subtractMask(outer, inner *image.Alpha) *image.Alpha {
	out := image.NewAlpha(outer.Rect)
	for i := range outer.Pix {
		o := outer.Pix[i]
		in := inner.Pix[i]
		if in >= o {
			out.Pix[i] = 0
		} else {
			out.Pix[i] = o - in
		}
	}
	return out
}

// ellipsePath appends an ellipse approximated by four cubic segments.
func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	kx := rx * bezierKappa
	ky := ry * bezierKappa
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

// roundedRectPath appends a rounded rectangle, clamping the radius to the
// half extents.
func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, radius float32) {
	maxRadius := (x1 - x0) / 2
	if (y1-y0)/2 < maxRadius {
		maxRadius = (y1 - y0) / 2
	}
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius < 0 {
		radius = 0
	}
	k := radius * bezierKappa
	z.MoveTo(x0+radius, y0)
	z.LineTo(x1-radius, y0)
	z.CubeTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	z.LineTo(x1, y1-radius)
	z.CubeTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	z.LineTo(x0+radius, y1)
	z.CubeTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	z.LineTo(x0, y0+radius)
	z.CubeTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	z.ClosePath()
}
