package script

import (
	"fmt"

	"github.com/example/scriptsplit/internal/models"
)

// VersionMicroscopy identifies the microscopy preprocessing script, the
// example fixed for this deployment. Other activity versions can be
// added alongside and selected through config.
const VersionMicroscopy = "microscopy-v2"

// ForVersion returns the script model for a configured version id. An
// empty version selects the microscopy default.
func ForVersion(version string) (*Model, error) {
	switch version {
	case "", VersionMicroscopy:
		return NewMicroscopy(), nil
	}
	return nil, fmt.Errorf("unknown script version %q", version)
}

// Seeded organize-stage asset names. The three data files are the
// recognized binary inputs checked by the path-consistency rules; the
// two images are the output artifacts checked by the output-path rules.
const (
	DataFileND2  = "sub-11-YAaLR_ophys.nd2"
	DataFileTIFF = "sub-12-BQnHJ_ophys.tiff"
	DataFileNPY  = "sub-14-KRsPU_ophys.npy"

	ComparisonImage = "sub-11-YAaLR_ophys_comparison.png"
	OverviewImage   = "overview.png"
)

// MicroscopyBlocks are the hand-picked code-block groups for the
// microscopy script: Group 1 spans the preprocessing helpers, Group 2
// the plotting functions.
var MicroscopyBlocks = []BlockSpec{
	{Name: "Group 1", Range: models.LineRange{Start: 26, End: 46}},
	{Name: "Group 2", Range: models.LineRange{Start: 48, End: 61}},
}

// NewMicroscopy builds the script model for the microscopy example.
func NewMicroscopy() *Model {
	return New(MicroscopySource, MicroscopyBlocks)
}

// MicroscopySource is the immutable example script. Unit line ranges and
// the block specs above index into this text, so edits here must keep
// the line layout.
const MicroscopySource = `import numpy as np
import matplotlib.pyplot as plt
from nd2reader import ND2Reader
from scipy.ndimage import zoom, gaussian_filter
from tifffile import imread


def load_file(file_path):
    if file_path.endswith('.nd2'):
        microscopy_data = ND2Reader(file_path)
        raw_image = microscopy_data[0]
        downsampling_factor = 0.5
        blur_factor = 1
    elif file_path.endswith('.tiff') or file_path.endswith('.tif'):
        raw_image = imread(file_path)
        downsampling_factor = 0.3
        blur_factor = 2
    elif file_path.endswith('.npy'):
        raw_image = np.load(file_path)
        downsampling_factor = 0.4
        blur_factor = 1
    else:
        raise ValueError(f"Unsupported file format: {file_path}")
    return raw_image, downsampling_factor, blur_factor


def normalize_image(image):
    lowest_pixel_value = np.min(image)
    highest_pixel_value = np.max(image)
    pixel_value_range = highest_pixel_value - lowest_pixel_value
    bottom_capped_image = image - lowest_pixel_value
    normalized_image = bottom_capped_image / pixel_value_range
    return normalized_image

def downsample_image(image, factor):
    downsampled_image = zoom(image, (factor, factor))
    return downsampled_image

def smooth_image(image, factor):
    smoothed_image = gaussian_filter(image, sigma=factor)
    return smoothed_image

def preprocess_image(raw_image, downsampling_factor, gaussian_sigma):
    normalized_image = normalize_image(raw_image)
    downsampled_image = downsample_image(normalized_image, downsampling_factor)
    smoothed_image = smooth_image(downsampled_image, gaussian_sigma)
    return smoothed_image

def plot_comparison(raw_image, processed_image, output_path):
    fig, axes = plt.subplots(1, 2, figsize=(12, 6))
    axes[0].imshow(raw_image, cmap='gray')
    axes[0].set_title('Raw')
    axes[1].imshow(processed_image, cmap='gray')
    axes[1].set_title('Processed')
    plt.savefig(output_path)

def plot_overview(processed_images, output_path):
    fig, axes = plt.subplots(len(processed_images), 1, figsize=(6, 18))
    for i, image in enumerate(processed_images):
        axes[i].imshow(image, cmap='gray')
        axes[i].axis('off')
    plt.savefig(output_path)

if __name__ == "__main__":
    files = ['sub-11-YAaLR_ophys.nd2', 'sub-12-BQnHJ_ophys.tiff', 'sub-14-KRsPU_ophys.npy']
    raw_images = []
    processed_images = []

    for filename in files:
        raw_image, downsampling_factor, blur_factor = load_file(f"{filename}")
        processed = preprocess_image(raw_image, downsampling_factor, blur_factor)
        raw_images.append(raw_image)
        processed_images.append(processed)

    plot_comparison(raw_images[0], processed_images[0],
                    output_path=f"sub-11-YAaLR_ophys_comparison.png")
    plot_overview(processed_images,
                  output_path=f"overview.png")`
