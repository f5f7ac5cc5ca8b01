package platform

// FontAscent is the baseline offset of proggy.TinySZ8pt7b: text drawn at y
// occupies rows y..y+7.
const FontAscent = 7
