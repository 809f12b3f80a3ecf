package plot

import "math"

// WavelengthToRGB converts a wavelength of light in nanometers to an
// approximate RGB color in [0, 1], valid from 380nm through 750nm; outside
// that range the color is black. Gamma-compressed with the given gamma.
//
// Based on code by Dan Bruton,
// http://www.physics.sfasu.edu/astro/color/spectra.html
func WavelengthToRGB(wavelength, gamma float64) (r, g, b float64) {
	if wavelength < 380 || wavelength > 750 {
		return 0, 0, 0
	}

	switch {
	case wavelength <= 440:
		attenuation := 0.3 + 0.7*(wavelength-380)/(440-380)
		r = math.Pow(-(wavelength-440)/(440-380)*attenuation, gamma)
		b = math.Pow(attenuation, gamma)
	case wavelength <= 490:
		g = math.Pow((wavelength-440)/(490-440), gamma)
		b = 1.0
	case wavelength <= 510:
		g = 1.0
		b = math.Pow(-(wavelength-510)/(510-490), gamma)
	case wavelength <= 580:
		r = math.Pow((wavelength-510)/(580-510), gamma)
		g = 1.0
	case wavelength <= 645:
		r = 1.0
		g = math.Pow(-(wavelength-645)/(645-580), gamma)
	case wavelength <= 750:
		attenuation := 0.3 + 0.7*(750-wavelength)/(750-645)
		r = math.Pow(attenuation, gamma)
	}
	return r, g, b
}
