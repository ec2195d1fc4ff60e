package io

// ExampleGeometryFile is the deck printed by the ExampleConfig CLI mode:
// a pincell-like arrangement of a cylindrical region inside a box.
const ExampleGeometryFile = `# Surfaces divide space into a positive and a
# negative half-space. Regions below refer to them by id, negated for the
# negative half-space.

[Surface "1"]
Type = z-cylinder
# x0 y0 radius
Coeffs = 0 0 0.5

[Surface "2"]
Type = x-plane
Coeffs = -1

[Surface "3"]
Type = x-plane
Coeffs = 1

[Surface "4"]
Type = y-plane
Coeffs = -1

[Surface "5"]
Type = y-plane
Coeffs = 1

[Material "10"]
Name = fuel

[Material "20"]
Name = water

# The pin: everything inside the cylinder.
[Cell "1"]
Name = pin
Material = 10
Region = -1

# The moderator: the box with the pin carved out. | is union, ~ is
# complement, and juxtaposition intersects.
[Cell "2"]
Name = moderator
Material = 20
Region = 1 2 -3 4 -5
Temperature = 600
`

// ExampleTrackFile is the config printed for the Track mode.
const ExampleTrackFile = `[Track]

#######################
# Required Parameters #
#######################

# Geometry deck to load.
Geometry = path/to/geometry.cfg

# Starting position.
X = -0.9
Y = 0
Z = 0

# Direction of flight. It does not need to be normalized.
U = 1
V = 0.1
W = 0

#######################
# Optional Parameters #
#######################

# Bound on the number of cell-to-cell steps before the run is abandoned.
# MaxSteps = 1000

# Log every step as it happens.
# Verbose = false
`
