// Package help carries the long-form usage text shared by the help command
// and the bare invocation.
package help

const Text = `
PDF Tools - Comprehensive PDF Processing Utility

COMMANDS:
  extract       Extract images from PDF files
  rotate        Rotate images in a directory
  create_pdf    Create PDF from images with page numbering
  compress      Basic PDF compression
  compress_adv  Advanced PDF compression with image optimization
  help          Show this detailed help

===============================================================================

EXTRACT - Extract images from PDF files
  Usage: pdftools extract <pdf_file> [options]

  Options:
    --min-width INT     Minimum image width to extract (default: 50)
    --min-height INT    Minimum image height to extract (default: 50)

  Examples:
    pdftools extract document.pdf
    pdftools extract document.pdf --min-width 100 --min-height 100

  Output: Creates folder named {pdf_name}_images with extracted images

===============================================================================

ROTATE - Rotate images in a directory
  Usage: pdftools rotate <directory> [options]

  Options:
    --direction, -d     Rotation direction: clockwise, anticlockwise, cw, acw
    --no-overwrite      Create new files instead of overwriting originals

  Examples:
    pdftools rotate image_folder
    pdftools rotate image_folder --direction clockwise
    pdftools rotate image_folder -d cw --no-overwrite

  Supported formats: PNG, JPG, JPEG, GIF, BMP, TIFF, WEBP

===============================================================================

CREATE_PDF - Create PDF from images with page numbering
  Usage: pdftools create_pdf <directory> [options]

  Options:
    --output, -o FILE   Output PDF filename

  Examples:
    pdftools create_pdf image_folder
    pdftools create_pdf image_folder --output my_document.pdf

  Image naming convention: *_page{N}_*.ext
  Example: deed_page1_img1.png, contract_page2_scan.jpg

===============================================================================

COMPRESS - Basic PDF compression
  Usage: pdftools compress <pdf_file> [options]

  Options:
    --compression, -c   Compression level: low, medium, high (default: medium)
    --output, -o FILE   Output PDF filename

  Examples:
    pdftools compress large_file.pdf
    pdftools compress large_file.pdf --compression high
    pdftools compress large_file.pdf -c high -o small_file.pdf

  Compression levels:
    low     - Basic compression, fastest
    medium  - Balanced compression (default)
    high    - Maximum compression, slower

===============================================================================

COMPRESS_ADV - Advanced PDF compression with aggressive optimization
  Usage: pdftools compress_adv <pdf_file> [options]

  Options:
    --quality, -q INT     JPEG quality for rendered pages (1-100, default: 30)
    --max-width INT       Maximum width for pages (default: 1200)
    --max-height INT      Maximum height for pages (default: 1600)
    --output, -o FILE     Output PDF filename

  Examples:
    pdftools compress_adv large_file.pdf
    pdftools compress_adv large_file.pdf --quality 20 --max-width 1000
    pdftools compress_adv large_file.pdf -q 15 --max-width 800 --output tiny.pdf

  This method renders each page as a compressed image for maximum size reduction.
  Best for scanned documents and image-heavy PDFs where extreme compression is needed.

===============================================================================

WORKFLOW EXAMPLES:

Complete PDF processing workflow:
  1. pdftools extract document.pdf
  2. pdftools rotate document_images --direction clockwise
  3. pdftools create_pdf document_images --output processed.pdf
  4. pdftools compress_adv processed.pdf --quality 70

PDF compression comparison:
  pdftools compress large.pdf --compression high
  pdftools compress_adv large.pdf --quality 60

===============================================================================

TIPS:
  - Use extract with quality filters to avoid tiny images
  - Rotate images before creating PDFs for proper orientation
  - Use basic compress for text-heavy PDFs
  - Use advanced compress for image-heavy PDFs
  - Lower quality values = smaller files but reduced image quality
  - Test different compression settings to find the best balance
`
