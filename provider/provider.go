// Package provider defines the translation backend interfaces and implementations.
package provider

import "github.com/ZaguanLabs/bhasha"

// Provider is the interface for machine translation backends.
// This is an alias to the main package interface for convenience.
type Provider = bhasha.Provider

// Detector is an alias to the main package interface.
type Detector = bhasha.Detector

// TranslateRequest is an alias to the main package type.
type TranslateRequest = bhasha.TranslateRequest

// Detection is an alias to the main package type.
type Detection = bhasha.Detection
