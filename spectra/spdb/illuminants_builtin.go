package spdb

// CIE illuminants B and C tabulated at 1 nm from 360 to 830 nm.

// cieBValues is CIE illuminant B (direct noon sunlight, deprecated).
var cieBValues = []float64{
	9.6, 10.16, 10.72, 11.28, 11.84, 12.4, 12.96, 13.52, 14.08, 14.64,
	15.2, 15.92, 16.64, 17.36, 18.08, 18.8, 19.52, 20.24, 20.96, 21.68,
	22.4, 23.29, 24.18, 25.07, 25.96, 26.85, 27.74, 28.63, 29.52, 30.41,
	31.3, 32.28, 33.25, 34.23, 35.2, 36.18, 37.2, 38.23, 39.25, 40.28,
	41.3, 42.36, 43.43, 44.49, 45.56, 46.62, 47.72, 48.81, 49.91, 51.0,
	52.1, 53.22, 54.34, 55.46, 56.58, 57.7, 58.8, 59.9, 61.0, 62.1,
	63.2, 64.23, 65.27, 66.3, 67.34, 68.37, 69.32, 70.26, 71.21, 72.15,
	73.1, 73.94, 74.78, 75.63, 76.47, 77.31, 78.01, 78.71, 79.4, 80.1,
	80.8, 81.33, 81.86, 82.38, 82.91, 83.44, 83.83, 84.22, 84.62, 85.01,
	85.4, 85.7, 85.99, 86.29, 86.58, 86.88, 87.16, 87.45, 87.73, 88.02,
	88.3, 88.66, 89.01, 89.37, 89.72, 90.08, 90.46, 90.85, 91.23, 91.62,
	92.0, 92.35, 92.7, 93.05, 93.4, 93.75, 94.04, 94.33, 94.62, 94.91,
	95.2, 95.41, 95.61, 95.82, 96.02, 96.23, 96.28, 96.34, 96.39, 96.45,
	96.5, 96.34, 96.18, 96.03, 95.87, 95.71, 95.41, 95.11, 94.8, 94.5,
	94.2, 93.83, 93.47, 93.1, 92.74, 92.37, 92.04, 91.7, 91.37, 91.03,
	90.7, 90.55, 90.4, 90.25, 90.1, 89.95, 89.86, 89.77, 89.68, 89.59,
	89.5, 89.69, 89.87, 90.06, 90.24, 90.43, 90.78, 91.14, 91.49, 91.85,
	92.2, 92.65, 93.1, 93.56, 94.01, 94.46, 94.95, 95.44, 95.92, 96.41,
	96.9, 97.35, 97.8, 98.26, 98.71, 99.16, 99.53, 99.9, 100.26, 100.63,
	101.0, 101.24, 101.48, 101.72, 101.96, 102.2, 102.32, 102.44, 102.56, 102.68,
	102.8, 102.82, 102.85, 102.87, 102.9, 102.92, 102.86, 102.79, 102.73, 102.66,
	102.6, 102.46, 102.32, 102.18, 102.04, 101.9, 101.72, 101.54, 101.36, 101.18,
	101.0, 100.81, 100.63, 100.44, 100.26, 100.07, 99.9, 99.72, 99.55, 99.37,
	99.2, 99.05, 98.9, 98.74, 98.59, 98.44, 98.35, 98.26, 98.18, 98.09,
	98.0, 98.02, 98.03, 98.05, 98.06, 98.08, 98.16, 98.25, 98.33, 98.42,
	98.5, 98.61, 98.72, 98.84, 98.95, 99.06, 99.19, 99.32, 99.44, 99.57,
	99.7, 99.83, 99.96, 100.1, 100.23, 100.36, 100.49, 100.62, 100.74, 100.87,
	101.0, 101.11, 101.22, 101.34, 101.45, 101.56, 101.69, 101.82, 101.94, 102.07,
	102.2, 102.37, 102.54, 102.71, 102.88, 103.05, 103.22, 103.39, 103.56, 103.73,
	103.9, 104.04, 104.18, 104.31, 104.45, 104.59, 104.67, 104.75, 104.84, 104.92,
	105.0, 105.02, 105.03, 105.05, 105.06, 105.08, 105.04, 105.01, 104.97, 104.94,
	104.9, 104.83, 104.76, 104.69, 104.62, 104.55, 104.42, 104.29, 104.16, 104.03,
	103.9, 103.69, 103.48, 103.26, 103.05, 102.84, 102.59, 102.34, 102.1, 101.85,
	101.6, 101.36, 101.11, 100.87, 100.62, 100.38, 100.12, 99.87, 99.61, 99.36,
	99.1, 98.82, 98.54, 98.26, 97.98, 97.7, 97.4, 97.1, 96.8, 96.5,
	96.2, 95.88, 95.56, 95.24, 94.92, 94.6, 94.26, 93.92, 93.58, 93.24,
	92.9, 92.54, 92.18, 91.82, 91.46, 91.1, 90.76, 90.42, 90.08, 89.74,
	89.4, 89.12, 88.84, 88.56, 88.28, 88.0, 87.78, 87.56, 87.34, 87.12,
	86.9, 86.7, 86.5, 86.3, 86.1, 85.9, 85.76, 85.62, 85.48, 85.34,
	85.2, 85.12, 85.04, 84.96, 84.88, 84.8, 84.78, 84.76, 84.74, 84.72,
	84.7, 84.74, 84.78, 84.82, 84.86, 84.9, 85.0, 85.1, 85.2, 85.3,
	85.4, 85.54, 85.68, 85.82, 85.96, 86.1, 86.28, 86.46, 86.64, 86.82,
	87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0,
	87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0,
	87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0,
	87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0,
	87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0, 87.0,
	87.0,
}

// cieCValues is CIE illuminant C (average daylight, deprecated).
var cieCValues = []float64{
	12.9, 13.76, 14.62, 15.48, 16.34, 17.2, 18.04, 18.88, 19.72, 20.56,
	21.4, 22.62, 23.84, 25.06, 26.28, 27.5, 28.6, 29.7, 30.8, 31.9,
	33.0, 34.38, 35.77, 37.15, 38.54, 39.92, 41.42, 42.91, 44.41, 45.9,
	47.4, 48.95, 50.51, 52.06, 53.62, 55.17, 56.8, 58.42, 60.05, 61.67,
	63.3, 65.0, 66.7, 68.41, 70.11, 71.81, 73.57, 75.33, 77.08, 78.84,
	80.6, 82.39, 84.17, 85.96, 87.74, 89.53, 91.24, 92.96, 94.67, 96.39,
	98.1, 99.64, 101.18, 102.72, 104.26, 105.8, 107.12, 108.44, 109.76, 111.08,
	112.4, 113.47, 114.54, 115.61, 116.68, 117.75, 118.5, 119.25, 120.0, 120.75,
	121.5, 121.89, 122.28, 122.67, 123.06, 123.45, 123.56, 123.67, 123.78, 123.89,
	124.0, 123.92, 123.84, 123.76, 123.68, 123.6, 123.5, 123.4, 123.3, 123.2,
	123.1, 123.14, 123.18, 123.22, 123.26, 123.3, 123.4, 123.5, 123.6, 123.7,
	123.8, 123.86, 123.92, 123.97, 124.03, 124.09, 124.05, 124.01, 123.98, 123.94,
	123.9, 123.7, 123.51, 123.31, 123.12, 122.92, 122.48, 122.03, 121.59, 121.14,
	120.7, 119.94, 119.18, 118.42, 117.66, 116.9, 115.94, 114.98, 114.02, 113.06,
	112.1, 111.08, 110.05, 109.03, 108.0, 106.98, 106.04, 105.11, 104.17, 103.24,
	102.3, 101.6, 100.9, 100.21, 99.51, 98.81, 98.43, 98.05, 97.66, 97.28,
	96.9, 96.88, 96.85, 96.83, 96.8, 96.78, 97.02, 97.27, 97.51, 97.76,
	98.0, 98.39, 98.78, 99.16, 99.55, 99.94, 100.37, 100.8, 101.24, 101.67,
	102.1, 102.47, 102.84, 103.21, 103.58, 103.95, 104.2, 104.45, 104.7, 104.95,
	105.2, 105.29, 105.39, 105.48, 105.58, 105.67, 105.6, 105.52, 105.45, 105.37,
	105.3, 105.06, 104.82, 104.59, 104.35, 104.11, 103.75, 103.39, 103.02, 102.66,
	102.3, 101.87, 101.44, 101.01, 100.58, 100.15, 99.68, 99.21, 98.74, 98.27,
	97.8, 97.33, 96.85, 96.38, 95.9, 95.43, 94.98, 94.54, 94.09, 93.65,
	93.2, 92.8, 92.41, 92.01, 91.62, 91.22, 90.92, 90.61, 90.31, 90.0,
	89.7, 89.53, 89.35, 89.18, 89.0, 88.83, 88.74, 88.66, 88.57, 88.49,
	88.4, 88.36, 88.32, 88.27, 88.23, 88.19, 88.17, 88.15, 88.14, 88.12,
	88.1, 88.09, 88.08, 88.08, 88.07, 88.06, 88.05, 88.04, 88.02, 88.01,
	88.0, 87.97, 87.94, 87.92, 87.89, 87.86, 87.85, 87.84, 87.82, 87.81,
	87.8, 87.84, 87.88, 87.91, 87.95, 87.99, 88.03, 88.07, 88.12, 88.16,
	88.2, 88.2, 88.2, 88.2, 88.2, 88.2, 88.14, 88.08, 88.02, 87.96,
	87.9, 87.76, 87.63, 87.49, 87.36, 87.22, 87.04, 86.85, 86.67, 86.48,
	86.3, 86.1, 85.9, 85.7, 85.5, 85.3, 85.04, 84.78, 84.52, 84.26,
	84.0, 83.64, 83.28, 82.93, 82.57, 82.21, 81.81, 81.41, 81.0, 80.6,
	80.2, 79.81, 79.42, 79.02, 78.63, 78.24, 77.85, 77.46, 77.08, 76.69,
	76.3, 75.91, 75.52, 75.14, 74.75, 74.36, 73.97, 73.58, 73.18, 72.79,
	72.4, 72.0, 71.6, 71.2, 70.8, 70.4, 69.98, 69.56, 69.14, 68.72,
	68.3, 67.9, 67.5, 67.1, 66.7, 66.3, 65.92, 65.54, 65.16, 64.78,
	64.4, 64.08, 63.76, 63.44, 63.12, 62.8, 62.54, 62.28, 62.02, 61.76,
	61.5, 61.24, 60.98, 60.72, 60.46, 60.2, 60.0, 59.8, 59.6, 59.4,
	59.2, 59.06, 58.92, 58.78, 58.64, 58.5, 58.42, 58.34, 58.26, 58.18,
	58.1, 58.08, 58.06, 58.04, 58.02, 58.0, 58.04, 58.08, 58.12, 58.16,
	58.2, 58.26, 58.32, 58.38, 58.44, 58.5, 58.62, 58.74, 58.86, 58.98,
	59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1,
	59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1,
	59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1,
	59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1,
	59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1, 59.1,
	59.1,
}
